package dedupe

// Ratio computes a sequence-based similarity ratio between two strings in
// [0,1]: twice the length of their longest common subsequence over the sum
// of their lengths. Identical strings score 1.0, disjoint strings 0.0.
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	// Single-row LCS dynamic program; inputs are capped by the caller so the
	// quadratic cost stays bounded.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(b)]
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}
