package visitor

// Visitor calls the provided callback for each (key, element) pair, in the container order.
// Returning (false, nil) from the callback stops the visit, an error stops it and is returned.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
