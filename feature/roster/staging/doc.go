// Package staging loads fetched snapshots into the store's staging
// slots. Each slot has replace-on-write semantics: a load fully
// discards the prior contents before writing, inside a single
// transaction. The sync procedures read the slots afterwards.
package staging
