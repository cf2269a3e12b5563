package label

// Index is a tile index: a small, totally ordered, hashable, serializable
// key identifying a tile (spec: "Typically small integer").
type Index int

// Invalid is returned where no tile label applies, e.g. for the kernel's
// infinite vertex which never carries a label.
const Invalid Index = -1
