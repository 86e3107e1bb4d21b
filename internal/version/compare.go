package version

import (
	"strconv"
	"strings"
)

// Compare orders two dotted numeric version strings component-wise as
// integers. Missing trailing components are treated as zero, so "1.0"
// equals "1.0.0". Returns negative, zero or positive for a<b, a==b, a>b.
func Compare(a, b string) int {
	as := strings.Split(strings.TrimSpace(a), ".")
	bs := strings.Split(strings.TrimSpace(b), ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av := component(as, i)
		bv := component(bs, i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	return 0
}

// component returns the i-th version component, or zero when missing or
// non-numeric
func component(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
