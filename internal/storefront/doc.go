// Package storefront holds the shop-side domain: checkout, order history and
// per-customer favorites. Customers are keyed by the email carried in their
// session token; the package never touches credentials.
package storefront
