// Package deltatable implements the four DeltaTable backends selectable via
// coupledmaze.Config.Backend: DenseBitset, LazySparseMap, AtomicBitsetXor,
// and AtomicByteCAS.
package deltatable
