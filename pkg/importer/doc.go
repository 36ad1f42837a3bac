// Package importer implements CSV import for the component catalog: the
// record parser, the reconciliation engine deciding whether each candidate is
// inserted, overwrites the stored record, or leaves it unchanged, and the
// driver that runs a whole batch against a store.
package importer
