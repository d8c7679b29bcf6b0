package poly

// Conic holds the coefficients of a x^2 + b xy + c y^2 + d x + e y + f = 0,
// in that order.
type Conic [6]float64

// Bezout eliminates x from two conics and returns the quartic in y whose real
// roots are the y coordinates of their intersections.
func Bezout(e1, e2 Conic) *Polynomial {
	AB := e1[0]*e2[1] - e2[0]*e1[1]
	AC := e1[0]*e2[2] - e2[0]*e1[2]
	AD := e1[0]*e2[3] - e2[0]*e1[3]
	AE := e1[0]*e2[4] - e2[0]*e1[4]
	AF := e1[0]*e2[5] - e2[0]*e1[5]
	BC := e1[1]*e2[2] - e2[1]*e1[2]
	BE := e1[1]*e2[4] - e2[1]*e1[4]
	BF := e1[1]*e2[5] - e2[1]*e1[5]
	CD := e1[2]*e2[3] - e2[2]*e1[3]
	DE := e1[3]*e2[4] - e2[3]*e1[4]
	DF := e1[3]*e2[5] - e2[3]*e1[5]

	BFpDE := BF + DE
	BEmCD := BE - CD

	return Quartic(
		AB*BC-AC*AC,
		AB*BEmCD+AD*BC-2*AC*AE,
		AB*BFpDE+AD*BEmCD-AE*AE-2*AC*AF,
		AB*DF+AD*BFpDE-2*AE*AF,
		AD*DF-AF*AF,
	)
}
