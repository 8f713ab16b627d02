package existing

// Placeholder source so the package clause can be detected.
var _ = 0
