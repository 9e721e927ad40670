// Package product provides the Product entity of the order management domain.
// Products are lightweight records created on the fly from the product name
// embedded in each order detail payload.
package product
