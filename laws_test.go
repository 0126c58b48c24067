package results_test

import (
	"testing"

	"github.com/oznakn/ts-results"
	"pgregory.net/rapid"
)

// Property: Option-Result round trip preserves the value.
func TestProperty_OptionResultRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int().Draw(t, "value")
		replacement := results.NewError("absent")

		opt := results.Some(value)
		back := opt.ToResult(replacement).ToOption()

		if !back.IsSome() {
			t.Fatalf("expected Some after round trip")
		}
		if back.Unwrap() != value {
			t.Fatalf("value changed: expected %d, got %d", value, back.Unwrap())
		}

		// The reverse direction loses the original error by contract.
		errMsg := rapid.String().Draw(t, "errMsg")
		failed := results.Err[int](results.NewError(errMsg))
		replaced := failed.ToOption().ToResult(replacement)
		if !replaced.IsErr() {
			t.Fatalf("expected Err after round trip")
		}
		if replaced.UnwrapErr() != replacement {
			t.Fatalf("expected the replacement error")
		}
	})
}

// Property: AndThen associativity for Option (monad law).
func TestProperty_OptionAndThenAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.IntRange(0, 100).Draw(t, "value")
		useSome := rapid.Bool().Draw(t, "useSome")

		f := func(x int) results.Option[int] { return results.Some(x + 1) }
		g := func(x int) results.Option[int] { return results.Some(x * 2) }

		opt := results.Some(value)
		if !useSome {
			opt = results.None[int]()
		}

		left := opt.AndThen(f).AndThen(g)
		right := opt.AndThen(func(x int) results.Option[int] { return f(x).AndThen(g) })

		if left.IsSome() != right.IsSome() {
			t.Fatalf("associativity violated: structure differs")
		}
		if left.IsSome() && left.Unwrap() != right.Unwrap() {
			t.Fatalf("associativity violated: %d != %d", left.Unwrap(), right.Unwrap())
		}
	})
}

// Property: AndThen associativity for Result (monad law).
func TestProperty_ResultAndThenAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.IntRange(0, 100).Draw(t, "value")
		useOk := rapid.Bool().Draw(t, "useOk")
		errMsg := rapid.String().Draw(t, "errMsg")

		f := func(x int) results.Result[int] { return results.Ok(x + 1) }
		g := func(x int) results.Result[int] { return results.Ok(x * 2) }

		res := results.Ok(value)
		if !useOk {
			res = results.Err[int](results.NewError(errMsg))
		}

		left := res.AndThen(f).AndThen(g)
		right := res.AndThen(func(x int) results.Result[int] { return f(x).AndThen(g) })

		if left.IsOk() != right.IsOk() {
			t.Fatalf("associativity violated: structure differs")
		}
		if left.IsOk() && left.Unwrap() != right.Unwrap() {
			t.Fatalf("associativity violated: %d != %d", left.Unwrap(), right.Unwrap())
		}
		if left.IsErr() && left.UnwrapErr() != right.UnwrapErr() {
			t.Fatalf("associativity violated: errors differ")
		}
	})
}

// Property: Map with identity changes nothing (functor law).
func TestProperty_MapIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int().Draw(t, "value")

		opt := results.Some(value)
		mapped := opt.Map(results.IdentityFunc[int])
		if mapped != opt {
			t.Fatalf("identity law violated for Option")
		}

		res := results.Ok(value)
		if res.Map(results.IdentityFunc[int]).Unwrap() != value {
			t.Fatalf("identity law violated for Result")
		}
	})
}

// Property: Map composition equals composed Map (functor law).
func TestProperty_MapComposition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int().Draw(t, "value")
		addend := rapid.IntRange(1, 100).Draw(t, "addend")
		multiplier := rapid.IntRange(1, 10).Draw(t, "multiplier")

		f := func(x int) int { return x + addend }
		g := func(x int) int { return x * multiplier }
		composed := results.ComposeFunc(f, g)

		opt := results.Some(value)
		if opt.Map(f).Map(g).Unwrap() != opt.Map(composed).Unwrap() {
			t.Fatalf("composition law violated for Option")
		}

		res := results.Ok(value)
		if res.Map(f).Map(g).Unwrap() != res.Map(composed).Unwrap() {
			t.Fatalf("composition law violated for Result")
		}
	})
}

// Property: combinator short-circuit order for AllResults.
func TestProperty_AllResultsFirstFailureWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		okCount := rapid.IntRange(0, 5).Draw(t, "okCount")

		first := results.NewError("first failure")
		rs := make([]results.Result[int], 0, okCount+2)
		for i := 0; i < okCount; i++ {
			rs = append(rs, results.Ok(i))
		}
		rs = append(rs, results.Err[int](first), results.Err[int](results.NewError("second failure")))

		got := results.AllResults(rs...)
		if !got.IsErr() {
			t.Fatalf("expected Err")
		}
		if got.UnwrapErr() != first {
			t.Fatalf("expected the first failure by identity")
		}
	})
}
