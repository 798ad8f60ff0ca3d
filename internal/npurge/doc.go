// Package npurge locates dependency-cache directories (node_modules by
// default) beneath a target tree, measures the disk space they occupy,
// and optionally removes them.
//
// The walk is sequential and prunes at every match: a matched directory
// is measured and acted on as a single unit and never descended into.
// Only the per-match size probe parallelizes internally.
package npurge
