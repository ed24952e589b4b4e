// Package backend provides the execution environments kernels run on.
//
// Three variants implement the same allocate/transfer/compile/invoke
// contract:
//
//   - serial: single OS thread, index order
//   - threads: fork-join data parallelism over contiguous index chunks
//   - workgroup: accelerator-style execution, one logical thread per index
//     grouped into fixed-size workgroups
//
// Kernels are pure and elementwise, with no cross-index ordering or shared
// mutable state, so backends partition the index range freely; all variants
// produce bit-identical results for the same kernel and inputs. Invoke
// blocks the caller until every index iteration completes: this is a
// bulk-synchronous compute model, not a service loop, and a dispatched
// kernel always runs to completion.
package backend
