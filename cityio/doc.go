// Package cityio reads batches of city descriptions and writes allocation
// results.
//
// Input format, one token group per line:
//
//	E N K        grid east bound, north bound, pizzeria count
//	x y c        K lines: pizzeria origin and capacity, in id order
//	...
//	0            end of input (optional; also ends after MaxCities)
//
// Text output, per case:
//
//	Case <n>:
//	<north> <east> <south> <west>    one line per pizzeria, in id order
//	                                 blank line
//
// Errors:
//
//   - city.ErrInvalidDimension, city.ErrInvalidCount, city.ErrInvalidCoordinate,
//     city.ErrInvalidCapacity wrapped with the line number.
//   - ErrMalformedLine: wrong number of fields or a non-integer field.
//   - ErrTruncated: input ended inside a city description.
package cityio
