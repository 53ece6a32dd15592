package db

import (
	"github.com/lonng/riichi/db/model"
	"github.com/lonng/riichi/pkg/errutil"
	"github.com/pkg/errors"
)

func InsertHistory(h *model.History) error {
	if h == nil {
		return errutil.ErrInvalidParameter
	}
	if _, err := database.Insert(h); err != nil {
		logger.Error(err)
		return errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	return nil
}

func QueryHistory(id int64) (*model.History, error) {
	h := &model.History{Id: id}
	has, err := database.Get(h)
	if err != nil {
		logger.Error(err)
		return nil, errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	if !has {
		return nil, errutil.ErrHistoryNotFound
	}
	return h, nil
}

func DeleteHistory(id int64) error {
	_, err := database.Delete(&model.History{Id: id})
	return err
}

// QueryHistoriesByGameID lists the hands of a game in play order.
func QueryHistoriesByGameID(gameID string) ([]model.History, int, error) {
	result := make([]model.History, 0)
	err := database.Where("game_uuid=?", gameID).Asc("round").Find(&result)
	if err != nil {
		logger.Error(err)
		return nil, 0, errors.Wrap(errutil.ErrDBOperation, err.Error())
	}
	return result, len(result), nil
}
