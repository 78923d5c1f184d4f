package services

import (
	"Attic/internal/config"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor periodically purges shopping entries that were marked deleted
// longer ago than the configured retention.
type Janitor struct {
	shoppingService ShoppingService
	configuration   *config.Configuration
	logService      LogService
	cleaning        bool
	mutex           sync.Mutex
	cron            *cron.Cron
}

func NewJanitorService(
	shoppingService ShoppingService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		shoppingService: shoppingService,
		logService:      logService,
		configuration:   configuration,
		cleaning:        false,
		mutex:           sync.Mutex{},
		cron:            cron.New(),
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	j.logService.Log.Debug("starting cleaning job")

	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.startClean(false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.cron.Stop()
	j.cleaning = false
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) startClean(forced bool) {
	retention := time.Duration(j.configuration.Server.CleanConfig.RetentionDays) * 24 * time.Hour
	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "start",
			"cron":   j.configuration.Server.CleanConfig.Schedule,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("purging deleted shopping entries")

	purged, err := j.shoppingService.PurgeDeleted(retention)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to purge deleted shopping entries")
		return
	}
	if purged > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  purged,
		}).Info("cleaning job finished")
	}
}
