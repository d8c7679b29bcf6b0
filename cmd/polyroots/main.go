// Command polyroots prints the roots of a polynomial given its coefficients,
// highest power first:
//
//	polyroots 1 -6 11 -6            # x^3 - 6x^2 + 11x - 6
//	polyroots -complex 1 0 1        # x^2 + 1 over the complex plane
//	polyroots -min 0 -max 2.5 1 -6 11 -6
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	polyroots "github.com/jonathanmweiss/go-polyroots"
	"github.com/jonathanmweiss/go-polyroots/poly"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("polyroots: ")

	var (
		eps      = flag.Float64("eps", polyroots.DefaultEpsilon, "zero threshold")
		tol      = flag.Float64("tol", polyroots.DefaultTolerance, "bisection acceptance |p(x)|")
		accuracy = flag.Int("accuracy", polyroots.DefaultAccuracy, "bisection decimal digits")
		maxIter  = flag.Int("max-iter", polyroots.DefaultMaxIterations, "durand-kerner iteration cap")
		cplx     = flag.Bool("complex", false, "print every complex root")
		lo       = flag.Float64("min", math.NaN(), "interval lower bound")
		hi       = flag.Float64("max", math.NaN(), "interval upper bound")
	)
	flag.Parse()

	p, err := parseDescending(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	s := polyroots.NewSolver(
		polyroots.WithEpsilon(*eps),
		polyroots.WithTolerance(*tol),
		polyroots.WithAccuracy(*accuracy),
		polyroots.WithMaxIterations(*maxIter),
	)

	fmt.Fprintf(os.Stdout, "p(x) = %v\n", p)

	switch {
	case *cplx:
		res, err := s.FindRoots(p)
		if err != nil {
			log.Printf("%v (%s)", err, res.Status)
		}

		for _, z := range res.Roots {
			fmt.Fprintf(os.Stdout, "%v\n", z)
		}
	case !math.IsNaN(*lo) || !math.IsNaN(*hi):
		roots, err := s.RootsInInterval(p, *lo, *hi)
		if err != nil {
			log.Fatal(err)
		}

		printReal(roots)
	default:
		roots, err := s.SolveOrFindRealRoots(p)
		if err != nil {
			log.Print(err)
		}

		printReal(roots)
	}
}

func parseDescending(args []string) (*poly.Polynomial, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no coefficients given")
	}

	b := poly.NewBuilder()
	for i, arg := range args {
		c, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}

		if err := b.Set(len(args)-1-i, c); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

func printReal(roots []float64) {
	if len(roots) == 0 {
		fmt.Fprintln(os.Stdout, "no real roots")
		return
	}

	for _, r := range roots {
		fmt.Fprintln(os.Stdout, strconv.FormatFloat(r, 'g', -1, 64))
	}
}
