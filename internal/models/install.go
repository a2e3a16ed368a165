package models

import (
	"sort"
)

/**
 * One installed application (serialized to TOML format)
 * @property {string} dir - Absolute path of the install directory
 * @property {uint16} patch - Current patch level, advanced one patch at a time
 */
type InstallEntry struct {
	Dir   string `toml:"dir" json:"dir"`
	Patch uint16 `toml:"patch" json:"patch"`
}

/**
 * Durable record of all applications known to this machine
 * @property {map[string]InstallEntry} games - Entries keyed by application name
 */
type InstallManifest struct {
	Games map[string]InstallEntry `toml:"games" json:"games"`
}

/**
 * Create an empty manifest
 */
func NewInstallManifest() *InstallManifest {
	return &InstallManifest{Games: make(map[string]InstallEntry)}
}

/**
 * Get the entry for an application
 * @param {string} name - Application name
 * @returns {InstallEntry, bool} The entry and whether it exists
 */
func (m *InstallManifest) Get(name string) (InstallEntry, bool) {
	if m.Games == nil {
		return InstallEntry{}, false
	}
	entry, ok := m.Games[name]
	return entry, ok
}

/**
 * Insert or overwrite the entry for an application
 * @param {string} name - Application name
 * @param {InstallEntry} entry - Entry to store, replaces any entry with the same name
 */
func (m *InstallManifest) Put(name string, entry InstallEntry) {
	if m.Games == nil {
		m.Games = make(map[string]InstallEntry)
	}
	m.Games[name] = entry
}

// Remove deletes the entry for name and reports whether it existed.
func (m *InstallManifest) Remove(name string) bool {
	if _, ok := m.Games[name]; !ok {
		return false
	}
	delete(m.Games, name)
	return true
}

/**
 * Remove an entry and hand it to the caller
 * @param {string} name - Application name
 * @returns {InstallEntry, bool} The removed entry and whether it existed
 * @description
 * - Used while an update run owns the entry; the run puts it back on success
 */
func (m *InstallManifest) Take(name string) (InstallEntry, bool) {
	entry, ok := m.Get(name)
	if ok {
		delete(m.Games, name)
	}
	return entry, ok
}

// Names returns the application names in sorted order.
func (m *InstallManifest) Names() []string {
	names := make([]string, 0, len(m.Games))
	for name := range m.Games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (m *InstallManifest) Len() int {
	return len(m.Games)
}
