// Package hashing fingerprints board snapshots and detects repeated ones.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/movegen-go/internal/chess"
)

const maxSquares = chess.MaxBoardSize * chess.MaxBoardSize

// Zobrist keys. Squares are indexed row*MaxBoardSize+col so one table
// serves every board size.
var (
	zobristPiece [2][chess.NumRanks][maxSquares]uint64
	zobristSize  [chess.MaxBoardSize + 1]uint64
	zobristSide  uint64 // XORed in when Black is to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed: fingerprints must be stable between runs.
	rnd := rand.New(rand.NewSource(0x5EED))

	for c := range zobristPiece {
		for r := range zobristPiece[c] {
			for sq := range zobristPiece[c][r] {
				zobristPiece[c][r][sq] = rnd.Uint64()
			}
		}
	}
	for n := range zobristSize {
		zobristSize[n] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash returns the Zobrist fingerprint of board: its size,
// the placement of every piece and the side to move. Piece ids do not
// contribute, so two boards built in a different order hash alike.
func GenerateZobristHash(board *chess.Board) uint64 {
	key := zobristSize[board.Size()]
	for _, pp := range board.Pieces() {
		key ^= zobristPiece[pp.Colour][pp.Rank][pp.At.Row*chess.MaxBoardSize+pp.At.Col]
	}
	if board.ToMove == chess.Black {
		key ^= zobristSide
	}
	return key
}

// WeakHash is a cheap second fingerprint used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint64 {
	var h uint64 = uint64(board.Size())
	for _, pp := range board.Pieces() {
		sq := uint64(pp.At.Row*board.Size() + pp.At.Col + 1)
		h = h*31 + sq*uint64(pp.Letter())
	}
	return h
}

// Signature identifies a snapshot in the detector.
type Signature struct {
	// Hash is the Zobrist hash of the snapshot
	Hash uint64
	// WeakHash is a fast hash for additional confidence
	WeakHash uint64
	// Pieces is the number of pieces on the board
	Pieces int
}

// SignatureOf computes the signature of board.
func SignatureOf(board *chess.Board) Signature {
	return Signature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
		Pieces:   len(board.Pieces()),
	}
}

// DuplicateDetector tracks seen snapshots.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by Zobrist hash
	hashTable map[uint64][]Signature
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// stored is the number of signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited capacity; once full, new snapshots are still checked but
// no longer remembered.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]Signature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if board repeats an earlier snapshot and remembers it.
// Returns true if the snapshot is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}
	return d.checkAndAdd(SignatureOf(board))
}

func (d *DuplicateDetector) checkAndAdd(sig Signature) bool {
	if d.has(sig) {
		d.duplicateCount++
		return true
	}
	if !d.IsFull() {
		d.remember(sig)
	}
	return false
}

func (d *DuplicateDetector) has(sig Signature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			return true
		}
	}
	return false
}

func (d *DuplicateDetector) remember(sig Signature) {
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct snapshots remembered.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.stored = 0
	d.duplicateCount = 0
}
