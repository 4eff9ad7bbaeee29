package idcodec

import (
	"math/rand"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		shard  int
		typeID uint16
		slot   uint64
	}{
		{"all zero", 0, 0, 0},
		{"max shard", MaxShard, 1, 0},
		{"max type", 1, MaxType, 0},
		{"max slot", 1, 1, MaxSlot},
		{"all max", MaxShard, MaxType, MaxSlot},
		{"typical", 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Pack(tt.shard, tt.typeID, tt.slot)
			if err != nil {
				t.Fatalf("Pack: %v", err)
			}
			shard, typeID, slot := Unpack(id)
			if shard != tt.shard || typeID != tt.typeID || slot != tt.slot {
				t.Fatalf("Unpack(Pack(%d,%d,%d)) = (%d,%d,%d)",
					tt.shard, tt.typeID, tt.slot, shard, typeID, slot)
			}
		})
	}
}

func TestPackOverflow(t *testing.T) {
	if _, err := Pack(MaxShard+1, 1, 0); err != ErrOverflow {
		t.Errorf("expected ErrOverflow for shard overflow, got %v", err)
	}
	if _, err := Pack(0, 1, MaxSlot+1); err != ErrOverflow {
		t.Errorf("expected ErrOverflow for slot overflow, got %v", err)
	}
	if _, err := Pack(-1, 1, 0); err != ErrOverflow {
		t.Errorf("expected ErrOverflow for negative shard, got %v", err)
	}
}

func TestRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		shard := r.Intn(1024)
		typeID := uint16(r.Intn(65536))
		slot := uint64(r.Int63n(1 << 38))

		id, err := Pack(shard, typeID, slot)
		if err != nil {
			t.Fatalf("Pack: %v", err)
		}
		gotShard, gotType, gotSlot := Unpack(id)
		if gotShard != shard || gotType != typeID || gotSlot != slot {
			t.Fatalf("round trip mismatch: want (%d,%d,%d) got (%d,%d,%d)",
				shard, typeID, slot, gotShard, gotType, gotSlot)
		}
	}
}

func TestRouteDeterministic(t *testing.T) {
	const numShards = 8
	first := Route("Person", "alice", numShards)
	for i := 0; i < 100; i++ {
		if got := Route("Person", "alice", numShards); got != first {
			t.Fatalf("Route not deterministic: got %d, want %d", got, first)
		}
	}
	if first < 0 || first >= numShards {
		t.Fatalf("Route returned out-of-range shard %d", first)
	}
}

func TestRouteDistribution(t *testing.T) {
	const numShards = 16
	const samples = 200000

	counts := make([]int, numShards)
	for i := 0; i < samples; i++ {
		key := randomKey(i)
		counts[Route("Person", key, numShards)]++
	}

	expected := float64(samples) / float64(numShards)
	for shard, c := range counts {
		dev := (float64(c) - expected) / expected
		if dev < -0.05 || dev > 0.05 {
			t.Errorf("shard %d got %d samples, expected ~%.0f (%.1f%% deviation)",
				shard, c, expected, dev*100)
		}
	}
}

func randomKey(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	buf := make([]byte, 12)
	n := i
	for j := range buf {
		buf[j] = letters[n%len(letters)]
		n = n/len(letters) + i*7
	}
	return string(buf)
}

func TestShardOfIsUnconditional(t *testing.T) {
	// §9 REDESIGN FLAG: no short-circuit to 0 for small ids.
	id, err := Pack(5, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := ShardOf(id); got != 5 {
		t.Fatalf("ShardOf(%d) = %d, want 5", id, got)
	}
}
