package db

import (
	"github.com/lonng/riichi/db/model"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

func QueryGame(uuid string) (*model.Game, error) {
	g := &model.Game{Uuid: uuid}
	has, err := database.Get(g)
	if err != nil {
		logger.Error(err)
		return nil, errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	if !has {
		return nil, errutil.ErrGameNotFound
	}
	return g, nil
}

// SaveGame inserts the game on its first hand and updates it afterwards.
func SaveGame(g *model.Game) error {
	if g == nil || g.Uuid == "" {
		return errutil.ErrInvalidParameter
	}

	session := database.NewSession()
	defer session.Close()

	if err := session.Begin(); err != nil {
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}

	old := &model.Game{Uuid: g.Uuid}
	has, err := session.Get(old)
	if err != nil {
		session.Rollback()
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}

	if has {
		g.Id = old.Id
		g.CreatedAt = old.CreatedAt
		_, err = session.ID(old.Id).AllCols().Update(g)
	} else {
		if g.CreatedAt == 0 {
			g.CreatedAt = g.UpdatedAt
		}
		_, err = session.Insert(g)
	}
	if err != nil {
		session.Rollback()
		logger.Error(err)
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	return session.Commit()
}

func DeleteGame(uuid string) error {
	_, err := database.Delete(&model.Game{Uuid: uuid})
	return err
}
