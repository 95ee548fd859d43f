package hashing

import (
	"math/rand"

	"github.com/lgbarn/fenboard-go/internal/chess"
)

const numColoredPieces = 12

var (
	zobristPieceAtSquare [numColoredPieces][chess.BoardSize * chess.BoardSize]uint64
	zobristBlackToMove   uint64
	zobristCastleRight   [2][chess.BoardSize]uint64
	zobristEnPassant     [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(32879419))
	zobristBlackToMove = r.Uint64()
	for c := range zobristCastleRight {
		for col := range zobristCastleRight[c] {
			zobristCastleRight[c][col] = r.Uint64()
		}
	}
	for col := range zobristEnPassant {
		zobristEnPassant[col] = r.Uint64()
	}
	for cp := range zobristPieceAtSquare {
		for sq := range zobristPieceAtSquare[cp] {
			zobristPieceAtSquare[cp][sq] = r.Uint64()
		}
	}
}

// GenerateZobristHash hashes everything a FEN string encodes except the
// move counters. The tables are seeded, so hashes are stable across runs.
func GenerateZobristHash(p *chess.Position) uint64 {
	var hash uint64

	board := p.Board()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if cp, ok := board.Get(row, col).Piece(); ok {
				hash ^= zobristPieceAtSquare[cp][row*chess.BoardSize+col]
			}
		}
	}

	if p.Turn() == chess.Black {
		hash ^= zobristBlackToMove
	}

	rights := p.CastleRights()
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for col := 0; col < chess.BoardSize; col++ {
			if rights.Has(c, col) {
				hash ^= zobristCastleRight[c][col]
			}
		}
	}

	if col, ok := p.EnPassant(); ok {
		hash ^= zobristEnPassant[col]
	}

	return hash
}

// WeakHash is a cheap secondary hash of the piece placement alone.
func WeakHash(p *chess.Position) uint32 {
	var hash uint32
	board := p.Board()
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if cp, ok := board.Get(row, col).Piece(); ok {
				hash += uint32(cp+1) * uint32(row*chess.BoardSize+col+1)
			}
		}
	}
	return hash
}
