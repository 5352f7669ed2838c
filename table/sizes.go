package table

import "slices"

// UpdateSizeArray sets explicit size of track index in a sparse size array
// for a table with count tracks. Zero means automatic size. The result is
// not trimmed.
func UpdateSizeArray(sizes []float64, index int, value float64, count int) []float64 {
	out := make([]float64, max(count, 0))
	copy(out, sizes)
	if index < 0 || index >= len(out) {
		return out
	}
	out[index] = max(value, 0)
	return out
}

// TrimSizeArray drops trailing automatic (zero or negative) entries, empty
// result is nil.
func TrimSizeArray(sizes []float64) []float64 {
	n := len(sizes)
	for n > 0 && sizes[n-1] <= 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return slices.Clone(sizes[:n])
}

// ResolveTracks turns sparse explicit sizes into count concrete track sizes
// summing to total. Automatic tracks share what explicit ones leave. When
// explicit sizes do not fit they are scaled down and automatic tracks
// collapse; when there are no automatic tracks explicit ones stretch.
func ResolveTracks(sizes []float64, count int, total float64) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	total = max(total, 0)

	var (
		explicit float64
		autos    int
	)
	for i := range count {
		if i < len(sizes) && sizes[i] > 0 {
			out[i] = sizes[i]
			explicit += sizes[i]
		} else {
			autos++
		}
	}

	remaining := total - explicit
	switch {
	case explicit == 0:
		for i := range out {
			out[i] = total / float64(count)
		}
	case remaining < 0 || autos == 0:
		scale := total / explicit
		for i := range out {
			out[i] *= scale
		}
	default:
		share := remaining / float64(autos)
		for i := range count {
			if i >= len(sizes) || sizes[i] <= 0 {
				out[i] = share
			}
		}
	}
	return out
}

// Offsets returns running start positions of tracks, one more entry than
// tracks with the last being the total.
func Offsets(tracks []float64) []float64 {
	out := make([]float64, len(tracks)+1)
	for i, t := range tracks {
		out[i+1] = out[i] + t
	}
	return out
}
