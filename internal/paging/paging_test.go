package paging

import "testing"

func TestClamp(t *testing.T) {
  policy := Policy{DefaultLimit: 50, MaxLimit: 50}

  cases := []struct {
    name string
    in   int
    want int
  }{
    {name: "negative_uses_default", in: -1, want: 50},
    {name: "zero_uses_default", in: 0, want: 50},
    {name: "absurd_clamps_to_ceiling", in: 99999, want: 50},
    {name: "within_bounds_kept", in: 10, want: 10},
    {name: "ceiling_exact", in: 50, want: 50},
    {name: "just_over_ceiling", in: 51, want: 50},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if got := policy.Clamp(tc.in); got != tc.want {
        t.Fatalf("Clamp(%d)=%d, want %d", tc.in, got, tc.want)
      }
    })
  }
}

func TestClampDefaultAboveCeiling(t *testing.T) {
  // A misconfigured default still respects the ceiling.
  policy := Policy{DefaultLimit: 100, MaxLimit: 50}
  if got := policy.Clamp(0); got != 50 {
    t.Fatalf("Clamp(0)=%d, want 50", got)
  }
}

func TestFirstPage(t *testing.T) {
  policy := Policy{DefaultLimit: 50, MaxLimit: 50}
  pg := policy.FirstPage(99999)
  if pg.Number != 0 {
    t.Fatalf("FirstPage number=%d, want 0", pg.Number)
  }
  if pg.Size != 50 {
    t.Fatalf("FirstPage size=%d, want 50", pg.Size)
  }
  if pg.Offset() != 0 {
    t.Fatalf("Offset()=%d, want 0", pg.Offset())
  }
}
