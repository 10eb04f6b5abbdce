package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrEditConflict = errors.New("edit conflict")

type Models struct {
	Games   GameModel
	Lines   LineModel
	Players PlayerModel
	Users   UserModel
	Tokens  TokenModel
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Games:   GameModel{db: initDb},
		Lines:   LineModel{db: initDb},
		Players: PlayerModel{db: initDb},
		Users:   UserModel{db: initDb},
		Tokens:  TokenModel{db: initDb},
	}
}
