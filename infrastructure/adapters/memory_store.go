package adapters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SomSamantray/AI-Script-Creator/application/ports/outbound"
	"github.com/SomSamantray/AI-Script-Creator/domain"
)

// MemoryDocumentStore is the in-process DocumentStorePort used in local mode
// and in tests. Semantics match the Dynamo store, including partial updates.
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string]domain.Document
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		docs: make(map[string]domain.Document),
	}
}

func (s *MemoryDocumentStore) Create(ctx context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return nil
}

func (s *MemoryDocumentStore) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return &doc, nil
}

func (s *MemoryDocumentStore) Update(ctx context.Context, id string, update outbound.DocumentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return outbound.ErrNotFound
	}
	if update.Status != nil {
		doc.Status = *update.Status
	}
	if update.ProgressPercentage != nil {
		doc.ProgressPercentage = *update.ProgressPercentage
	}
	if update.CurrentStep != nil {
		doc.CurrentStep = *update.CurrentStep
	}
	if update.ErrorMessage != nil {
		doc.ErrorMessage = *update.ErrorMessage
	}
	doc.UpdatedAt = time.Now().UTC()
	s.docs[id] = doc
	return nil
}

// MemoryChunkStore is the in-process ChunkStorePort.
type MemoryChunkStore struct {
	mu     sync.RWMutex
	chunks map[string][]domain.Chunk
}

func NewMemoryChunkStore() *MemoryChunkStore {
	return &MemoryChunkStore{
		chunks: make(map[string][]domain.Chunk),
	}
}

func (s *MemoryChunkStore) CreateBatch(ctx context.Context, chunks []domain.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, chunk := range chunks {
		s.chunks[chunk.DocumentID] = append(s.chunks[chunk.DocumentID], chunk)
	}
	return nil
}

func (s *MemoryChunkStore) ListByDocumentID(ctx context.Context, documentID string) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chunks := make([]domain.Chunk, len(s.chunks[documentID]))
	copy(chunks, s.chunks[documentID])
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ChunkOrder < chunks[j].ChunkOrder
	})
	return chunks, nil
}

// MemoryAudioOutputStore is the in-process AudioOutputStorePort. One record
// per document.
type MemoryAudioOutputStore struct {
	mu      sync.RWMutex
	outputs map[string]domain.AudioOutput
}

func NewMemoryAudioOutputStore() *MemoryAudioOutputStore {
	return &MemoryAudioOutputStore{
		outputs: make(map[string]domain.AudioOutput),
	}
}

func (s *MemoryAudioOutputStore) Create(ctx context.Context, output domain.AudioOutput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[output.DocumentID] = output
	return nil
}

func (s *MemoryAudioOutputStore) GetByDocumentID(ctx context.Context, documentID string) (*domain.AudioOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	output, ok := s.outputs[documentID]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return &output, nil
}

func (s *MemoryAudioOutputStore) UpdateByDocumentID(ctx context.Context, documentID string, update outbound.AudioOutputUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	output, ok := s.outputs[documentID]
	if !ok {
		return outbound.ErrNotFound
	}
	if update.AudioURL != nil {
		output.AudioURL = *update.AudioURL
	}
	if update.DurationSeconds != nil {
		output.DurationSeconds = *update.DurationSeconds
	}
	if update.FileSizeBytes != nil {
		output.FileSizeBytes = *update.FileSizeBytes
	}
	s.outputs[documentID] = output
	return nil
}
