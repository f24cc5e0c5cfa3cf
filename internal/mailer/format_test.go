package mailer

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		0:             "$0",
		0.5:           "$1",
		999.4:         "$999",
		262734.234309: "$262,734",
		2000000:       "$2,000,000",
		2283676.51:    "$2,283,677",
		-5.4:          "-$5",
		-1234.6:       "-$1,235",
	}
	for in, want := range cases {
		if got := FormatUSD(in); got != want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(4); got != "4%" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPercent(3.5); got != "3.5%" {
		t.Fatalf("got %q", got)
	}
}
