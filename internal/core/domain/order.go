package domain

import "sort"

// SortFolders orders folders by position, oldest first on ties.
func SortFolders(folders []Folder) {
	sort.SliceStable(folders, func(i, j int) bool {
		if folders[i].Position != folders[j].Position {
			return folders[i].Position < folders[j].Position
		}
		return folders[i].CreatedAt.Before(folders[j].CreatedAt)
	})
}
