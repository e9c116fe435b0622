package controllers

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"
)

const DirectoryUpdateInterval = time.Minute * 20

// GroupController keeps a cached directory of all groups for navigation
// rendering. Groups change only through the admin CLI, so a periodic
// refresh is enough.
type GroupController struct {
	db            db.GroupDatabase
	cachedGroups  []*model.Group
	cachedLock    sync.Mutex
	refreshTicker *time.Ticker
}

func NewGroupController(ctx context.Context, groupDB db.GroupDatabase) (*GroupController, error) {
	controller := &GroupController{
		db: groupDB,
	}
	if err := controller.Refresh(ctx); err != nil {
		return nil, err
	}

	refreshTicker := time.NewTicker(DirectoryUpdateInterval)
	controller.refreshTicker = refreshTicker
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warn("recovered while refreshing group directory ", r)
			}
		}()
		for range refreshTicker.C {
			if err := controller.Refresh(ctx); err != nil {
				log.WithError(err).Warn("group directory refresh failed")
			}
		}
	}()

	return controller, nil
}

// Groups returns the cached directory.
func (gc *GroupController) Groups() []*model.Group {
	gc.cachedLock.Lock()
	defer gc.cachedLock.Unlock()
	return gc.cachedGroups
}

// Refresh reloads the directory from the store.
func (gc *GroupController) Refresh(ctx context.Context) error {
	groups, err := gc.db.GetGroups(ctx)
	if err != nil {
		return err
	}
	gc.cachedLock.Lock()
	defer gc.cachedLock.Unlock()
	gc.cachedGroups = groups
	return nil
}

func (gc *GroupController) Stop() {
	if gc.refreshTicker != nil {
		gc.refreshTicker.Stop()
	}
}
