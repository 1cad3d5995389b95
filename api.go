package main

import (
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/fenboard/fen"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type positionRequest struct {
	FEN string
}

type positionResponse struct {
	Href     string
	Position Position
	Board    []string
}

type positionsResponse struct {
	Href      string
	Positions []Position
}

type statsResponse struct {
	Href     string
	Count    int
	Pieces   Summary
	Material Summary
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	var parseErr *fen.ParseError
	if errors.As(err, &parseErr) {
		return echo.NewHTTPError(http.StatusBadRequest, parseErr.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestBoard(c echo.Context) (*fen.Board, error) {
	var message positionRequest
	if err := c.Bind(&message); err != nil {
		return nil, err
	}
	return fen.Decode(message.FEN)
}

func requestPosition(c echo.Context, store positionStore) (*Position, *fen.Board, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, nil, err
	}
	position, err := store.getPosition(id)
	if err != nil {
		return nil, nil, errToHTTP(err)
	}
	board, err := position.board()
	if err != nil {
		return nil, nil, err
	}
	return position, board, nil
}

func responsePosition(position Position, board *fen.Board) positionResponse {
	return positionResponse{Position: position, Board: fen.Render(board), Href: path.Join("/positions", position.PositionID.String())}
}

func responsePositions(positions []Position) positionsResponse {
	return positionsResponse{Positions: positions, Href: "/positions"}
}

func apiHandler(store positionStore) *echo.Echo {
	e := echo.New()

	e.POST("/decode", func(c echo.Context) error {
		board, err := requestBoard(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, positionResponse{Position: makePosition(board), Board: fen.Render(board), Href: "/decode"})
	})
	e.GET("/positions", func(c echo.Context) error {
		positions, err := store.getPositions()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePositions(positions))
	})
	e.POST("/positions", func(c echo.Context) error {
		board, err := requestBoard(c)
		if err != nil {
			return errToHTTP(err)
		}
		position := makePosition(board)
		if err := store.createPosition(&position); err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responsePosition(position, board))
	})
	e.GET("/positions/:id", func(c echo.Context) error {
		position, board, err := requestPosition(c, store)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, responsePosition(*position, board))
	})
	e.GET("/positions/:id/board", func(c echo.Context) error {
		_, board, err := requestPosition(c, store)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, strings.Join(fen.Render(board), "\n")+"\n")
	})
	e.GET("/positions/:id/diagram", func(c echo.Context) error {
		_, board, err := requestPosition(c, store)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, "image/svg+xml", diagram(board))
	})
	e.GET("/stats", func(c echo.Context) error {
		positions, err := store.getPositions()
		if err != nil {
			return errToHTTP(err)
		}
		pieces, material, err := positionStats(positions)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, statsResponse{Href: "/stats", Count: len(positions), Pieces: pieces, Material: material})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
