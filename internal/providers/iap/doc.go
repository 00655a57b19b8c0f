/*
Package iap handles in-app purchases.

Provider talks to the store platform and keeps the product catalog read from
IAP/products.yaml. Store implements Service: it lists the offers still
available to the player and, when the platform reports a purchase, adds the
product's quantity to collected loot and records it in the purchase history.

Store callbacks are posted to the runtime dispatcher; nothing here touches
progress off the frame goroutine. A failed initialization only hides the
shop offers.
*/
package iap
