package regions

import (
	geojson "github.com/paulmach/go.geojson"
)

// FeatureCollection returns one point feature per region, placed at its
// centroid. Properties from props[id] are merged into each feature; regions
// without props still appear, carrying only id, name and abbr.
func FeatureCollection(props map[int]map[string]any) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range all {
		f := geojson.NewPointFeature([]float64{r.Lng, r.Lat})
		f.ID = r.ID
		f.SetProperty("id", r.ID)
		f.SetProperty("name", r.Name)
		f.SetProperty("abbr", r.Abbr)
		for k, v := range props[r.ID] {
			f.SetProperty(k, v)
		}
		fc.AddFeature(f)
	}
	return fc
}
