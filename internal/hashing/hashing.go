// Package hashing provides duplicate detection for chess positions.
package hashing

import (
	"github.com/lgbarn/fenboard-go/internal/chess"
)

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]Signature
	// useExactMatch compares FEN text on hash hits
	useExactMatch bool
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	uniqueCount int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature stores identifying information about a position.
type Signature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// FEN is only recorded for exact matching
	FEN string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a position is a duplicate and adds it to the hash
// table. Returns true if the position is a duplicate. Once the detector is
// full new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(p *chess.Position) bool {
	if p == nil {
		return false
	}

	sig := Signature{
		Hash:     GenerateZobristHash(p),
		WeakHash: WeakHash(p),
	}
	if d.useExactMatch {
		sig.FEN = p.FEN()
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.FEN != b.FEN {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit has been reached.
// Always false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.uniqueCount = 0
	d.duplicateCount = 0
}
