// Package conv provides best-effort coercion of loosely typed values into Go
// scalars. It backs scalar field conversion, typed model accessors and struct
// binding.
package conv
