// Package codec contains the value codec used by the pydis objects.
//
// Every value is stored as its canonical string form. The values are read back
// by the field descriptors - Type - that carries the field kind together with
// the parse and format functions resolved at the schema definition time.
//
// A value that was never written decodes into the zero value of its type.
// It is not possible to distinguish 'never set' from 'set to zero value' by
// the decoded result only.
package codec
