// Package tensor implements N-dimensional strided tensors over flat buffers.
//
// A Tensor is shape, stride and offset metadata over a reference-counted
// buffer. Index, Slice and SliceMany produce views that share the buffer, so
// sub-regions are addressed without copying. Assign and the elementwise
// operations walk tensors leaf by leaf, depth-first along the leading axis.
//
// Errors wrap one of the Err* kinds and are matched with errors.Is.
package tensor
