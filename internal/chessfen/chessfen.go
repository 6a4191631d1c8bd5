// Package chessfen converts between standard chess FEN and board.Position.
//
// Rank 1 maps to row 0 and file a to column 0, so the standard starting
// FEN yields board.NewInitialPosition().
package chessfen

import (
	"fmt"

	"github.com/notnil/chess"

	"kingsearch/internal/board"
)

const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// KingsAndPawnsFEN leaves both kings room to move; in the standard start they are boxed in.
	KingsAndPawnsFEN = "4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1"
)

var kindFromChess = map[chess.PieceType]board.Kind{
	chess.King:   board.King,
	chess.Queen:  board.Queen,
	chess.Rook:   board.Rook,
	chess.Knight: board.Knight,
	chess.Bishop: board.Bishop,
	chess.Pawn:   board.Pawn,
}

var kindToChess = map[board.Kind]chess.PieceType{
	board.King:   chess.King,
	board.Queen:  chess.Queen,
	board.Rook:   chess.Rook,
	board.Knight: chess.Knight,
	board.Bishop: chess.Bishop,
	board.Pawn:   chess.Pawn,
}

// Parse reads a FEN string and returns the piece placement and the side to move.
func Parse(fen string) (board.Position, board.Side, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return board.Position{}, board.White, fmt.Errorf("parse fen: %w", err)
	}
	cp := chess.NewGame(opt).Position()

	var pos board.Position
	for sq, pc := range cp.Board().SquareMap() {
		k, ok := kindFromChess[pc.Type()]
		if !ok {
			continue
		}
		side := board.Black
		if pc.Color() == chess.White {
			side = board.White
		}
		pos.Set(squareFromChess(sq), board.MakePiece(side, k))
	}

	toMove := board.Black
	if cp.Turn() == chess.White {
		toMove = board.White
	}
	return pos, toMove, nil
}

// Format writes pos as a FEN string. Castling and en-passant fields are always empty.
func Format(pos board.Position, toMove board.Side) string {
	m := make(map[chess.Square]chess.Piece)
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			pc := pos.Squares[r][c]
			if pc.IsEmpty() {
				continue
			}
			color := chess.Black
			if pc.Side == board.White {
				color = chess.White
			}
			m[squareToChess(board.Square{Row: r, Col: c})] = chess.NewPiece(kindToChess[pc.Kind], color)
		}
	}
	turn := "b"
	if toMove == board.White {
		turn = "w"
	}
	return fmt.Sprintf("%s %s - - 0 1", chess.NewBoard(m).String(), turn)
}

func squareFromChess(sq chess.Square) board.Square {
	return board.Square{Row: int(sq.Rank()), Col: int(sq.File())}
}

func squareToChess(sq board.Square) chess.Square {
	return chess.Square(sq.Row*8 + sq.Col)
}
