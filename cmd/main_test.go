package main

import "testing"

func TestListenAddr(t *testing.T) {
	cases := []struct {
		name    string
		envPort string
		cfgAddr string
		want    string
	}{
		{"bare env port gets colon", "4001", "", ":4001"},
		{"env port with colon kept", ":5000", "", ":5000"},
		{"env wins over config", "4001", ":9999", ":4001"},
		{"config address used when env empty", "", ":4001", ":4001"},
		{"host and port config kept", "", "localhost:4001", "localhost:4001"},
		{"default when both empty", "", "", ":4001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := listenAddr(tc.envPort, tc.cfgAddr); got != tc.want {
				t.Fatalf("listenAddr(%q, %q) = %q, want %q", tc.envPort, tc.cfgAddr, got, tc.want)
			}
		})
	}
}
