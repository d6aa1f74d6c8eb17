package util

// PointerSize is the size in bytes of a pointer on all targets minigo
// supports.  Every scalar type shares this width.
const PointerSize = 8
