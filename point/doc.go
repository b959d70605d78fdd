// Package point defines the immutable 3-D integer points clustered by this
// module, the squared Euclidean distance between them, and a line-oriented
// reader for "x,y,z" coordinate lists.
//
// What:
//
//   - Point carries a positional ID in [0, N) and three signed coordinates.
//   - SquaredDistance returns dx²+dy²+dz² in int64 arithmetic.
//   - Parse / ParseLine turn text into points, one point per non-blank line.
//
// Input format:
//
//	162,817,812
//	57,618,57
//	906,360,560
//
// Leading and trailing blanks around each coordinate are ignored; blank
// lines are skipped and do not consume an ID.
//
// Errors:
//
//   - ErrMalformedLine: a line is not exactly three comma-separated integers.
//     Parse wraps it with the 1-based line number.
package point
