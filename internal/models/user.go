package models

const (
	MaxServers        = 5
	MaxFolders        = 10
	MaxLinksPerFolder = 20

	// DefaultFolderName is used when a folder's name is cleared and for
	// the folder synthesized during legacy link migration.
	DefaultFolderName = "Untitled"
	MigratedFolder    = "My Links"
)

// User is one record in the shared document, keyed by Slug. JSON field
// names match the existing document format; renaming any of them breaks
// every document already stored remotely.
type User struct {
	Username     string   `json:"username"`
	Slug         string   `json:"slug"`
	PasswordHash string   `json:"password"`
	DiscordID    string   `json:"discordId"`
	Bio          string   `json:"bio"`
	Servers      []string `json:"servers"`
	Folders      []Folder `json:"folders,omitempty"`
	Links        []Link   `json:"links"`
	Published    bool     `json:"published"`
	Created      int64    `json:"created"`
}

type Folder struct {
	Name string `json:"name"`
	Links []Link `json:"links"`
	// Expanded is UI state, but it is persisted with the document so a
	// profile renders the way its owner left it.
	Expanded bool `json:"expanded"`
}

type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MigrateLinks converts the legacy flat link list into a single folder.
// It is a no-op once the user has folders or has no legacy links, so
// running it on every load is safe.
func (u *User) MigrateLinks() {
	if len(u.Folders) > 0 || len(u.Links) == 0 {
		u.Links = nil
		return
	}
	u.Folders = []Folder{{
		Name:     MigratedFolder,
		Links:    u.Links,
		Expanded: true,
	}}
	u.Links = nil
}

// Normalize enforces the structural limits: at most MaxServers invite
// codes, MaxFolders folders, MaxLinksPerFolder links per folder. Links
// without a URL are dropped and cleared folder names default to
// DefaultFolderName.
func (u *User) Normalize() {
	servers := u.Servers[:0]
	for _, s := range u.Servers {
		if s != "" {
			servers = append(servers, s)
		}
	}
	if len(servers) > MaxServers {
		servers = servers[:MaxServers]
	}
	u.Servers = servers

	if len(u.Folders) > MaxFolders {
		u.Folders = u.Folders[:MaxFolders]
	}
	for i := range u.Folders {
		f := &u.Folders[i]
		if f.Name == "" {
			f.Name = DefaultFolderName
		}
		links := f.Links[:0]
		for _, l := range f.Links {
			if l.URL != "" {
				links = append(links, l)
			}
		}
		if len(links) > MaxLinksPerFolder {
			links = links[:MaxLinksPerFolder]
		}
		f.Links = links
	}
}

// Clone returns a deep copy so document snapshots never share slices.
func (u *User) Clone() *User {
	c := *u
	c.Servers = append([]string(nil), u.Servers...)
	c.Links = append([]Link(nil), u.Links...)
	c.Folders = make([]Folder, len(u.Folders))
	for i, f := range u.Folders {
		c.Folders[i] = Folder{
			Name:     f.Name,
			Links:    append([]Link(nil), f.Links...),
			Expanded: f.Expanded,
		}
	}
	return &c
}
