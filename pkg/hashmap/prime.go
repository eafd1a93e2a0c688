package hashmap

// NextPrime returns the smallest prime that is >= n. Anything below 3
// rounds up to 2.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}

// IsPrime checks n for primality using trial division
func IsPrime(n int) bool {
	if n < 2 || n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
