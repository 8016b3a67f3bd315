package trait

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/novagenetica/internal/platform/errors"
)

// Bucket names one fixed section of the presentation sequence.
type Bucket string

const (
	BucketStart     Bucket = "START"
	BucketSyringe   Bucket = "SYRINGE"
	BucketGene      Bucket = "GENE"
	BucketMobFlakes Bucket = "MOB_FLAKES"
	BucketEnd       Bucket = "END"
)

// Buckets returns the buckets in display order.
func Buckets() []Bucket {
	return []Bucket{BucketStart, BucketSyringe, BucketGene, BucketMobFlakes, BucketEnd}
}

// ParseBucket resolves a bucket name, ignoring case and surrounding space.
func ParseBucket(name string) (Bucket, error) {
	candidate := Bucket(strings.ToUpper(strings.TrimSpace(name)))
	for _, bucket := range Buckets() {
		if bucket == candidate {
			return bucket, nil
		}
	}
	return "", unknownBucket(name)
}

// Entry is one artifact with the bucket it was appended to.
type Entry[A any] struct {
	Bucket   Bucket
	Artifact A
}

// Sequencer accumulates host artifacts into the fixed buckets.
type Sequencer[A any] struct {
	buckets map[Bucket][]A
}

// NewSequencer creates a sequencer with every bucket present and empty.
func NewSequencer[A any]() *Sequencer[A] {
	buckets := make(map[Bucket][]A, len(Buckets()))
	for _, bucket := range Buckets() {
		buckets[bucket] = []A{}
	}
	return &Sequencer[A]{buckets: buckets}
}

// Append adds artifact to the end of bucket.
func (s *Sequencer[A]) Append(bucket Bucket, artifact A) error {
	items, ok := s.buckets[bucket]
	if !ok {
		return unknownBucket(string(bucket))
	}
	s.buckets[bucket] = append(items, artifact)
	return nil
}

// Flatten concatenates all buckets in display order. Each call reflects the
// current contents.
func (s *Sequencer[A]) Flatten() []A {
	out := make([]A, 0, s.Len())
	for _, bucket := range Buckets() {
		out = append(out, s.buckets[bucket]...)
	}
	return out
}

// Entries is Flatten with each artifact's bucket attached.
func (s *Sequencer[A]) Entries() []Entry[A] {
	out := make([]Entry[A], 0, s.Len())
	for _, bucket := range Buckets() {
		for _, artifact := range s.buckets[bucket] {
			out = append(out, Entry[A]{Bucket: bucket, Artifact: artifact})
		}
	}
	return out
}

// Bucket returns a copy of one bucket's contents.
func (s *Sequencer[A]) Bucket(bucket Bucket) ([]A, error) {
	items, ok := s.buckets[bucket]
	if !ok {
		return nil, unknownBucket(string(bucket))
	}
	out := make([]A, len(items))
	copy(out, items)
	return out, nil
}

// Len returns the total number of artifacts.
func (s *Sequencer[A]) Len() int {
	total := 0
	for _, items := range s.buckets {
		total += len(items)
	}
	return total
}

func unknownBucket(name string) error {
	return apperrors.WithMetadata(
		apperrors.CodePresentationUnknownBucket,
		fmt.Sprintf("presentation bucket is unknown: %q", name),
		map[string]string{"bucket": name},
	)
}
