// Package pydis is the typed object mapping over a key-value store.
// It presents the stored hashes as records with a fixed schema and the stored lists
// as sequences of typed items. Each object is bound to its store and identity 'Kind:token'.
// It consists of the following packages:
// - pydis - the root package with records, sequences, identities and child sequences.
// - codec - typed field descriptors that converts the values from and into their stored string form.
// - store - the store interfaces with the hash, list and key primitives.
// - store/redis - the redis store and the connection factory.
// - store/memory - in-process store with the redis semantics.
// - config - contains the configurations for all packages.
// - namer - naming conventions used for deriving the object kinds.
// - errors - used as a default error package for the pydis packages.
// - log - is the logging interface for the pydis based applications.
// - models - example domain models built on top of the records and sequences.
package pydis
