/*
Package ads provides rewarded video ads.

Platform callbacks are posted to the runtime dispatcher, so readiness
subscribers and finish callbacks always run on the frame goroutine. Offline
stands in for a real SDK in headless runs.
*/
package ads
