package interfaces

// IIDGenerator produces fresh record ids. Injected so tests can supply
// deterministic ids; production wires the UUID implementation.
type IIDGenerator interface {
	NewID() string
}
