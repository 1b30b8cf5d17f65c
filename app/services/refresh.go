package services

import (
	"log"

	"github.com/kien39/mil-mang/app/events"
	"github.com/kien39/mil-mang/app/storage"
)

// SubscribeStorageReloads refreshes the cached service state whenever the
// watcher reports an external rewrite of the state file, so open views pick
// up changes made by another process without a manual reload. Returns the
// subscription cancel function.
func SubscribeStorageReloads(bus *events.Bus, roster *Roster, tasks *Tasks, survey *Survey) func() {
	ch, cancel := bus.Subscribe(events.TopicStorageExternal)
	go func() {
		for key := range ch {
			switch key {
			case storage.KeyAttendance:
				if err := roster.Load(); err != nil {
					log.Printf("Reloading roster after external change failed: %v", err)
				}
			case storage.KeyTasks:
				tasks.Reload()
			case storage.KeyEvaluations:
				survey.Reload()
			}
		}
	}()
	return cancel
}
