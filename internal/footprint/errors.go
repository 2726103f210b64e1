package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compared with errors.Is().
var (
	// ErrReadInput indicates the input stream could not be read.
	ErrReadInput = constError("FAILED TO READ INPUT")

	// ErrInvalidQuantity indicates the quantity text is not a usable number.
	ErrInvalidQuantity = constError("INVALID INPUT. Please enter a valid number.")

	// ErrUnknownCategory indicates a category that is not present in the catalog.
	ErrUnknownCategory = constError("unknown category")

	// ErrInvalidCatalog indicates the embedded reference data failed validation.
	ErrInvalidCatalog = constError("invalid catalog")
)
