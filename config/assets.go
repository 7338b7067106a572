package config

// PhotoSource selects which photo set the frames load
type PhotoSource string

const (
	PhotoSourceEmbedded PhotoSource = "embedded"
	PhotoSourceRemote   PhotoSource = "remote"
)

// AssetsConfig lists the hard-coded asset references.
// References are "embed:" paths, local files, http(s) URLs or data: URLs.
type AssetsConfig struct {
	Skyline         string
	SkylineFallback string
	PhotoFallback   string
	PhotosEmbedded  []string
	PhotosRemote    []string
	PhotoSlots      []string
	SkylineSlot     string
	PersistAppName  string
}

var Assets AssetsConfig

func init() {
	Assets = AssetsConfig{
		Skyline:         "https://upload.wikimedia.org/wikipedia/commons/d/d1/Toronto_Skyline_at_night_-b.jpg",
		SkylineFallback: "embed:images/skyline.png",
		PhotoFallback:   "embed:images/fallback_photo.png",
		PhotosEmbedded: []string{
			"embed:images/photos/p1.png",
			"embed:images/photos/p2.png",
			"embed:images/photos/p3.png",
			"embed:images/photos/p4.png",
		},
		PhotosRemote: []string{
			"https://github.com/rabpreet18/Harnoor_birthday/blob/main/app/34f04288-b2c6-4111-8f3c-8e188df538ac.JPG",
			"https://github.com/rabpreet18/Harnoor_birthday/blob/main/app/IMG_1444.PNG",
			"https://github.com/rabpreet18/Harnoor_birthday/blob/main/app/IMG_1752.PNG",
			"https://github.com/rabpreet18/Harnoor_birthday/blob/main/app/IMG_1822.jpg",
		},
		PhotoSlots:     []string{"photo1", "photo2", "photo3", "photo4"},
		SkylineSlot:    "skyline",
		PersistAppName: "cakeday",
	}
}

// Photos returns the photo references for the given source
func (a AssetsConfig) Photos(src PhotoSource) []string {
	if src == PhotoSourceRemote {
		return a.PhotosRemote
	}
	return a.PhotosEmbedded
}

// Slots returns every persisted override slot name
func (a AssetsConfig) Slots() []string {
	return append(append([]string{}, a.PhotoSlots...), a.SkylineSlot)
}
