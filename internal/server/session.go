package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/errors"
	"github.com/lgbarn/fenboard-go/internal/i18n"
	"github.com/lgbarn/fenboard-go/internal/output"
)

// CastleEdit changes one castle right.
type CastleEdit struct {
	Color string `json:"color"` // "w" or "b"
	Side  string `json:"side"`  // "k" or "q"
	Value bool   `json:"value"`
}

// EditMessage is one edit sent by a websocket client. Exactly one of the
// edit fields is expected; the first one set wins.
type EditMessage struct {
	FEN       *string     `json:"fen,omitempty"`
	Strict    bool        `json:"strict,omitempty"`
	Square    *string     `json:"square,omitempty"`
	Piece     string      `json:"piece,omitempty"` // FEN letter, or "" / "-" to empty the square
	Turn      *string     `json:"turn,omitempty"`
	Castle    *CastleEdit `json:"castle,omitempty"`
	EnPassant *string     `json:"enPassant,omitempty"` // column letter or "-"
	Reset     bool        `json:"reset,omitempty"`
	Clear     bool        `json:"clear,omitempty"`
	Lang      string      `json:"lang,omitempty"`
}

// EditReply is sent after every message, and once when the session opens.
type EditReply struct {
	Position *output.PositionJSON `json:"position"`
	Error    *output.ErrorJSON    `json:"error,omitempty"`
}

// session is the state of one websocket editor.
type session struct {
	position *chess.Position
	counters chess.Counters
	cat      *i18n.Catalogue
}

var errEmptyEdit = errors.IllegalArgument("session", "no edit in message")

// apply performs one edit. A failed edit leaves the position untouched.
func (ss *session) apply(msg EditMessage) error {
	if msg.Lang != "" {
		ss.cat = i18n.Lookup(msg.Lang)
	}

	switch {
	case msg.FEN != nil:
		var (
			counters chess.Counters
			err      error
		)
		if msg.Strict {
			counters, err = ss.position.SetFENStrict(*msg.FEN)
		} else {
			counters, err = ss.position.SetFEN(*msg.FEN)
		}
		if err != nil {
			return err
		}
		ss.counters = counters
		return nil

	case msg.Square != nil:
		content := chess.Empty
		if msg.Piece != "" && msg.Piece != "-" {
			cp, ok := chess.ColoredPieceFromLetter(msg.Piece[0])
			if !ok || len(msg.Piece) != 1 {
				return errors.IllegalArgument("session.piece", msg.Piece)
			}
			content = chess.PieceContent(cp)
		}
		return ss.position.SetSquare(*msg.Square, content)

	case msg.Turn != nil:
		color, err := chess.ParseColor(*msg.Turn)
		if err != nil {
			return err
		}
		return ss.position.SetTurn(color)

	case msg.Castle != nil:
		color, err := chess.ParseColor(msg.Castle.Color)
		if err != nil {
			return err
		}
		side, err := chess.ParseCastleSide(msg.Castle.Side)
		if err != nil {
			return err
		}
		return ss.position.SetCastleRight(color, side, msg.Castle.Value)

	case msg.EnPassant != nil:
		return ss.position.SetEnPassantString(*msg.EnPassant)

	case msg.Reset:
		ss.position.Reset()
		ss.counters = chess.DefaultCounters
		return nil

	case msg.Clear:
		ss.position.Clear()
		ss.counters = chess.DefaultCounters
		return nil
	}
	return errEmptyEdit
}

func (ss *session) reply(err error) EditReply {
	r := EditReply{Position: output.PositionToJSON(ss.position, ss.counters)}
	if err != nil {
		r.Error = output.ErrorToJSON(err, ss.cat)
	}
	return r
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("websocket upgrade: %v", err)
		return
	}
	defer c.Close()

	ss := &session{
		position: chess.NewPosition(),
		counters: chess.DefaultCounters,
		cat:      s.catalogue(r),
	}
	if err := c.WriteJSON(ss.reply(nil)); err != nil {
		return
	}

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Printf("websocket read: %v", err)
			}
			return
		}

		var msg EditMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			err = errors.Wrap(errors.IllegalArgument("session", string(data)), err.Error())
			if werr := c.WriteJSON(ss.reply(err)); werr != nil {
				return
			}
			continue
		}

		if werr := c.WriteJSON(ss.reply(ss.apply(msg))); werr != nil {
			s.log.Printf("websocket write: %v", werr)
			return
		}
	}
}
