package iap

// Product is what the store reports for a configured product
type Product struct {
	ID             string
	LocalizedPrice string
	Available      bool
}

// Listener receives store callbacks. Platforms may call it from any goroutine.
type Listener interface {
	OnInitialized(products []Product)
	OnInitializeFailed(reason string)
	ProcessPurchase(productID string)
	OnPurchaseFailed(productID, reason string)
}

// Platform is the store SDK binding
type Platform interface {
	Initialize(environment string, products []ProductConfig, listener Listener) error
	Purchase(productID string) error
	// ConfirmPurchase acknowledges a processed purchase so the store stops
	// redelivering it
	ConfirmPurchase(productID string)
}
