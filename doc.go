// Package swisstable implements a generic, in-memory associative container
// inspired by the SwissTable design: a single contiguous open-addressed
// table with a parallel array of one-byte metadata per slot, and Robin Hood
// displacement on insertion.
//
// The core Table type owns exactly three coupled invariants across every
// mutation: the metadata and entry arrays agree on which slots are live,
// every live entry sits no farther from its ideal slot than any occupant it
// displaced on the way in, and probe walks terminate correctly in the
// presence of tombstones left behind by deletion. Surrounding facilities —
// iteration adapters, bulk construction from sequences, structural
// equality, rendering — are built on the table's own operations (Each, Get,
// Set) and do not touch its slot or metadata arrays.
//
// There is no persistence, no concurrent-mutation support, and no
// deterministic iteration order: a single owner mutates the table, readers
// may run concurrently with each other but not with a mutator, and
// enumeration order is stable only between mutations.
package swisstable
