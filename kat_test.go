package newhope_test

import (
	"bufio"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lattica/newhope"
)

// counterSource replaces the random oracle for the known-answer tests: it
// yields the byte sequence start, start+1, start+2, ... mod 256 across
// calls.
func counterSource(start byte) newhope.RandomSource {
	state := start
	return newhope.RandomSourceFunc(func(b []byte) error {
		for i := range b {
			b[i] = state
			state++
		}
		return nil
	})
}

type katVector struct {
	start byte
	pkA   []byte
	pkB   []byte
	key   []byte
}

func readKATs(t *testing.T) []katVector {
	t.Helper()
	f, err := os.Open("testdata/kat.txt")
	require.NoError(t, err)
	defer f.Close()

	var vectors []katVector
	var cur katVector
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1<<16), 1<<16)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, value, found := strings.Cut(line, " = ")
		require.True(t, found, "malformed line %q", line)
		switch name {
		case "start":
			n, err := strconv.Atoi(value)
			require.NoError(t, err)
			cur = katVector{start: byte(n)}
		case "pka":
			cur.pkA, err = hex.DecodeString(value)
			require.NoError(t, err)
		case "pkb":
			cur.pkB, err = hex.DecodeString(value)
			require.NoError(t, err)
		case "key":
			cur.key, err = hex.DecodeString(value)
			require.NoError(t, err)
			vectors = append(vectors, cur)
		}
	}
	require.NoError(t, scanner.Err())
	require.NotEmpty(t, vectors)
	return vectors
}

// TestKnownAnswer replays the recorded vectors: with the standard SHAKE
// suite and the counter randomness, both wire messages and the shared
// secret must reproduce byte for byte.
func TestKnownAnswer(t *testing.T) {
	base := newhope.NewSuite()
	for _, v := range readKATs(t) {
		suite := &newhope.Suite{
			Random: counterSource(v.start),
			XOF:    base.XOF,
			Stream: base.Stream,
		}

		sk, pkA, err := newhope.KeyGeneration(suite)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(v.pkA, pkA), "PublicKeyA, start %d", v.start)

		pkB, kB, err := newhope.SecretAgreementB(suite, pkA)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(v.pkB, pkB), "PublicKeyB, start %d", v.start)
		require.Empty(t, cmp.Diff(v.key, kB), "shared secret, start %d", v.start)

		kA, err := newhope.SecretAgreementA(sk, pkB)
		require.NoError(t, err)
		require.Equal(t, kB, kA)
		sk.Wipe()
	}
}
