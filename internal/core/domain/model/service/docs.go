// Package service contains the catalog entry for bookable work and its
// priced variants. Order items snapshot names and prices from here at
// checkout.
package service
