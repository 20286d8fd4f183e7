// Package store layers the notebook's persistence over two database tiers:
// an always-present local SQLite file and an optional remote mirror. Reads
// prefer the remote tier; writes go through to local synchronously and to
// the remote in the background, so a flaky connection never blocks practice.
package store

import (
	"log"
	"time"

	"notebook/internal/database"
	"notebook/internal/models"
	"notebook/internal/repository"
)

const historySaveDelay = 2 * time.Second

// Snapshot is the full persisted state loaded at startup
type Snapshot struct {
	Words       []models.Word
	Spelling    map[string]models.SpellingHistory
	Recognition map[string]models.RecognitionHistory
	Bank        []models.BankEntry
	Exams       []models.ExamRecord
	Feedback    map[string]models.ParentFeedback

	// Source names the tier the snapshot came from, "remote" or "local"
	Source string
}

func emptySnapshot(source string) *Snapshot {
	return &Snapshot{
		Spelling:    make(map[string]models.SpellingHistory),
		Recognition: make(map[string]models.RecognitionHistory),
		Feedback:    make(map[string]models.ParentFeedback),
		Source:      source,
	}
}

func (s *Snapshot) empty() bool {
	return len(s.Words) == 0 && len(s.Spelling) == 0 && len(s.Recognition) == 0 &&
		len(s.Bank) == 0 && len(s.Exams) == 0 && len(s.Feedback) == 0
}

// tier bundles the repositories over one database connection
type tier struct {
	words       *repository.WordRepository
	spelling    *repository.SpellingHistoryRepository
	recognition *repository.RecognitionHistoryRepository
	sessions    *repository.SessionRepository
	bank        *repository.BankRepository
	exams       *repository.ExamRepository
	feedback    *repository.FeedbackRepository
}

func newTier(db *database.DB) *tier {
	return &tier{
		words:       repository.NewWordRepository(db),
		spelling:    repository.NewSpellingHistoryRepository(db),
		recognition: repository.NewRecognitionHistoryRepository(db),
		sessions:    repository.NewSessionRepository(db),
		bank:        repository.NewBankRepository(db),
		exams:       repository.NewExamRepository(db),
		feedback:    repository.NewFeedbackRepository(db),
	}
}

func (t *tier) load(source string) (*Snapshot, error) {
	snap := emptySnapshot(source)
	var err error

	if snap.Words, err = t.words.GetAll(); err != nil {
		return nil, err
	}
	if snap.Spelling, err = t.spelling.GetAll(); err != nil {
		return nil, err
	}
	if snap.Recognition, err = t.recognition.GetAll(); err != nil {
		return nil, err
	}
	if snap.Bank, err = t.bank.GetAll(); err != nil {
		return nil, err
	}
	if snap.Exams, err = t.exams.GetAll(); err != nil {
		return nil, err
	}
	if snap.Feedback, err = t.feedback.GetAll(); err != nil {
		return nil, err
	}

	return snap, nil
}

// Tiered is the two-tier store. All Save and Delete methods are optimistic:
// failures are logged, never returned, so callers keep their in-memory state
// regardless of storage health.
type Tiered struct {
	local    *tier
	remote   *tier // nil when no remote tier is configured
	debounce *Debouncer
}

// New creates a tiered store; remoteDB may be nil
func New(localDB, remoteDB *database.DB) *Tiered {
	s := &Tiered{
		local:    newTier(localDB),
		debounce: NewDebouncer(historySaveDelay),
	}
	if remoteDB != nil {
		s.remote = newTier(remoteDB)
	}
	return s
}

// Load reads the startup snapshot, preferring the remote tier. A fresh
// remote paired with existing local data triggers a one-off migration of
// the local data to the remote. Sessions are not part of the snapshot;
// they are read per-day with LoadSession.
func (s *Tiered) Load() (*Snapshot, error) {
	local, err := s.local.load("local")
	if err != nil {
		return nil, err
	}

	if s.remote == nil {
		return local, nil
	}

	remote, err := s.remote.load("remote")
	if err != nil {
		log.Printf("Remote load failed, using local data: %v", err)
		return local, nil
	}

	if remote.empty() && !local.empty() {
		log.Println("Remote store is empty, migrating local data")
		go s.migrateToRemote(local)
		return local, nil
	}

	// Remote wins; refresh the local mirror in the background
	go s.mirrorToLocal(remote)
	return remote, nil
}

// LoadSession reads the saved session for a date from the local tier
func (s *Tiered) LoadSession(date string) *models.SpellingSession {
	session, err := s.local.sessions.Get(date)
	if err != nil {
		log.Printf("Failed to load session for %s: %v", date, err)
		return nil
	}
	return session
}

// SaveWord persists a word to both tiers
func (s *Tiered) SaveWord(w models.Word) {
	if err := s.local.words.Upsert(&w); err != nil {
		log.Printf("Failed to save word %q locally: %v", w.Word, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.words.Upsert(&w); err != nil {
				log.Printf("Failed to save word %q remotely: %v", w.Word, err)
			}
		}()
	}
}

// DeleteWord removes a word from both tiers
func (s *Tiered) DeleteWord(id string) {
	if err := s.local.words.Delete(id); err != nil {
		log.Printf("Failed to delete word %s locally: %v", id, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.words.Delete(id); err != nil {
				log.Printf("Failed to delete word %s remotely: %v", id, err)
			}
		}()
	}
}

// SaveSpellingHistory persists the spelling tracker, debounced. The map is
// copied up front so the caller may keep mutating its own.
func (s *Tiered) SaveSpellingHistory(histories map[string]models.SpellingHistory) {
	copied := make(map[string]models.SpellingHistory, len(histories))
	for k, v := range histories {
		copied[k] = v
	}

	s.debounce.Trigger("spelling", func() {
		if err := s.local.spelling.SaveAll(copied); err != nil {
			log.Printf("Failed to save spelling history locally: %v", err)
		}
		if s.remote != nil {
			if err := s.remote.spelling.SaveAll(copied); err != nil {
				log.Printf("Failed to save spelling history remotely: %v", err)
			}
		}
	})
}

// SaveRecognitionHistory persists the recognition tracker, debounced
func (s *Tiered) SaveRecognitionHistory(histories map[string]models.RecognitionHistory) {
	copied := make(map[string]models.RecognitionHistory, len(histories))
	for k, v := range histories {
		copied[k] = v
	}

	s.debounce.Trigger("recognition", func() {
		if err := s.local.recognition.SaveAll(copied); err != nil {
			log.Printf("Failed to save recognition history locally: %v", err)
		}
		if s.remote != nil {
			if err := s.remote.recognition.SaveAll(copied); err != nil {
				log.Printf("Failed to save recognition history remotely: %v", err)
			}
		}
	})
}

// SaveSession persists a session to the local tier only. Rows from earlier
// days are dropped; a session is never valid past its date.
func (s *Tiered) SaveSession(session *models.SpellingSession) {
	if err := s.local.sessions.Save(session); err != nil {
		log.Printf("Failed to save session for %s: %v", session.Date, err)
	}
	if err := s.local.sessions.DeleteBefore(session.Date); err != nil {
		log.Printf("Failed to prune stale sessions: %v", err)
	}
}

// SaveBankEntry persists a ledger entry to both tiers
func (s *Tiered) SaveBankEntry(e models.BankEntry) {
	if err := s.local.bank.Upsert(&e); err != nil {
		log.Printf("Failed to save bank entry %s locally: %v", e.ID, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.bank.Upsert(&e); err != nil {
				log.Printf("Failed to save bank entry %s remotely: %v", e.ID, err)
			}
		}()
	}
}

// DeleteBankEntry removes a ledger entry from both tiers
func (s *Tiered) DeleteBankEntry(id string) {
	if err := s.local.bank.Delete(id); err != nil {
		log.Printf("Failed to delete bank entry %s locally: %v", id, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.bank.Delete(id); err != nil {
				log.Printf("Failed to delete bank entry %s remotely: %v", id, err)
			}
		}()
	}
}

// SaveExamRecord persists an exam record to both tiers
func (s *Tiered) SaveExamRecord(rec models.ExamRecord) {
	if err := s.local.exams.Upsert(&rec); err != nil {
		log.Printf("Failed to save exam record %s locally: %v", rec.ID, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.exams.Upsert(&rec); err != nil {
				log.Printf("Failed to save exam record %s remotely: %v", rec.ID, err)
			}
		}()
	}
}

// DeleteExamRecord removes an exam record from both tiers
func (s *Tiered) DeleteExamRecord(id string) {
	if err := s.local.exams.Delete(id); err != nil {
		log.Printf("Failed to delete exam record %s locally: %v", id, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.exams.Delete(id); err != nil {
				log.Printf("Failed to delete exam record %s remotely: %v", id, err)
			}
		}()
	}
}

// SaveFeedback persists a day's parent feedback to both tiers
func (s *Tiered) SaveFeedback(f models.ParentFeedback) {
	if err := s.local.feedback.Upsert(&f); err != nil {
		log.Printf("Failed to save feedback for %s locally: %v", f.Date, err)
	}
	if s.remote != nil {
		go func() {
			if err := s.remote.feedback.Upsert(&f); err != nil {
				log.Printf("Failed to save feedback for %s remotely: %v", f.Date, err)
			}
		}()
	}
}

// Flush forces out any debounced writes. Call on shutdown.
func (s *Tiered) Flush() {
	s.debounce.Flush()
}

// migrateToRemote copies a local snapshot into an empty remote tier
func (s *Tiered) migrateToRemote(snap *Snapshot) {
	if err := s.remote.words.ReplaceAll(snap.Words); err != nil {
		log.Printf("Migration: failed to copy words to remote: %v", err)
		return
	}
	if err := s.remote.spelling.SaveAll(snap.Spelling); err != nil {
		log.Printf("Migration: failed to copy spelling history to remote: %v", err)
		return
	}
	if err := s.remote.recognition.SaveAll(snap.Recognition); err != nil {
		log.Printf("Migration: failed to copy recognition history to remote: %v", err)
		return
	}
	if err := s.remote.bank.ReplaceAll(snap.Bank); err != nil {
		log.Printf("Migration: failed to copy bank entries to remote: %v", err)
		return
	}
	if err := s.remote.exams.ReplaceAll(snap.Exams); err != nil {
		log.Printf("Migration: failed to copy exam records to remote: %v", err)
		return
	}
	if err := s.remote.feedback.ReplaceAll(snap.Feedback); err != nil {
		log.Printf("Migration: failed to copy feedback to remote: %v", err)
		return
	}
	log.Printf("Migrated %d words and %d tracked spellings to remote store",
		len(snap.Words), len(snap.Spelling))
}

// mirrorToLocal refreshes the local tier from a remote snapshot
func (s *Tiered) mirrorToLocal(snap *Snapshot) {
	if err := s.local.words.ReplaceAll(snap.Words); err != nil {
		log.Printf("Mirror: failed to refresh local words: %v", err)
	}
	if err := s.local.spelling.SaveAll(snap.Spelling); err != nil {
		log.Printf("Mirror: failed to refresh local spelling history: %v", err)
	}
	if err := s.local.recognition.SaveAll(snap.Recognition); err != nil {
		log.Printf("Mirror: failed to refresh local recognition history: %v", err)
	}
	if err := s.local.bank.ReplaceAll(snap.Bank); err != nil {
		log.Printf("Mirror: failed to refresh local bank entries: %v", err)
	}
	if err := s.local.exams.ReplaceAll(snap.Exams); err != nil {
		log.Printf("Mirror: failed to refresh local exam records: %v", err)
	}
	if err := s.local.feedback.ReplaceAll(snap.Feedback); err != nil {
		log.Printf("Mirror: failed to refresh local feedback: %v", err)
	}
}
