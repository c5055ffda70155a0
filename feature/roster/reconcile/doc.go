// Package reconcile computes the membership delta between the fetched
// roster snapshot and the store's active roster.
//
// The diff is a pure identifier-set difference over player IDs, built
// in one pass per snapshot. It deliberately ignores attribute changes:
// a traded player keeps the same ID and therefore produces no delta,
// which matches how the downstream sync procedures treat the staged
// snapshot as the full source of truth for attributes.
package reconcile
