package ethvm

import (
	"math/big"

	mc "github.com/CaduceusMetaverseProtocol/MetaEEI/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// memAccount is the in-memory account record backing MemStateDB. Storage
// values are kept with leading zero bytes stripped, so a slot holding the
// zero word and an absent slot are the same thing.
type memAccount struct {
	balance *big.Int
	nonce   uint64
	code    []byte
	storage map[common.Hash][]byte
}

func newMemAccount() *memAccount {
	return &memAccount{
		balance: new(big.Int),
		storage: make(map[common.Hash][]byte),
	}
}

type revision struct {
	id           int
	journalIndex int
}

// MemStateDB is a journal-backed in-memory StateDB. It is the state host
// used by the tests and by callers that drive the VM without a backing
// chain database. Every mutation appends an undo closure to the journal;
// RevertToSnapshot unwinds the journal to the recorded length.
type MemStateDB struct {
	accounts map[common.Address]*memAccount

	// committed holds the value each written slot had when the current
	// transaction began, keyed lazily on first write.
	committed map[common.Address]map[common.Hash][]byte

	journal        []func()
	validRevisions []revision
	nextRevisionID int
}

// NewMemStateDB returns an empty in-memory state.
func NewMemStateDB() *MemStateDB {
	return &MemStateDB{
		accounts:  make(map[common.Address]*memAccount),
		committed: make(map[common.Address]map[common.Hash][]byte),
	}
}

func (s *MemStateDB) getAccount(addr common.Address) *memAccount {
	return s.accounts[addr]
}

func (s *MemStateDB) getOrNewAccount(addr common.Address) *memAccount {
	acc := s.accounts[addr]
	if acc == nil {
		acc = newMemAccount()
		s.accounts[addr] = acc
		s.journal = append(s.journal, func() {
			delete(s.accounts, addr)
		})
	}
	return acc
}

// CreateAccount explicitly creates a state object. If a state object with
// the address already exists its balance is carried over to the new account.
func (s *MemStateDB) CreateAccount(addr common.Address) {
	prev := s.accounts[addr]
	acc := newMemAccount()
	if prev != nil {
		acc.balance = new(big.Int).Set(prev.balance)
	}
	s.accounts[addr] = acc
	s.journal = append(s.journal, func() {
		if prev != nil {
			s.accounts[addr] = prev
		} else {
			delete(s.accounts, addr)
		}
	})
}

func (s *MemStateDB) SubBalance(addr common.Address, amount *big.Int) {
	if amount.Sign() == 0 && s.getAccount(addr) != nil {
		return
	}
	acc := s.getOrNewAccount(addr)
	prev := new(big.Int).Set(acc.balance)
	acc.balance = new(big.Int).Sub(acc.balance, amount)
	s.journal = append(s.journal, func() {
		acc.balance = prev
	})
}

func (s *MemStateDB) AddBalance(addr common.Address, amount *big.Int) {
	acc := s.getOrNewAccount(addr)
	prev := new(big.Int).Set(acc.balance)
	acc.balance = new(big.Int).Add(acc.balance, amount)
	s.journal = append(s.journal, func() {
		acc.balance = prev
	})
}

func (s *MemStateDB) GetBalance(addr common.Address) *big.Int {
	if acc := s.getAccount(addr); acc != nil {
		return new(big.Int).Set(acc.balance)
	}
	return new(big.Int)
}

func (s *MemStateDB) GetNonce(addr common.Address) uint64 {
	if acc := s.getAccount(addr); acc != nil {
		return acc.nonce
	}
	return 0
}

func (s *MemStateDB) SetNonce(addr common.Address, nonce uint64) {
	acc := s.getOrNewAccount(addr)
	prev := acc.nonce
	acc.nonce = nonce
	s.journal = append(s.journal, func() {
		acc.nonce = prev
	})
}

func (s *MemStateDB) GetCodeHash(addr common.Address) common.Hash {
	acc := s.getAccount(addr)
	if acc == nil {
		return common.Hash{}
	}
	return crypto.Keccak256Hash(acc.code)
}

func (s *MemStateDB) GetCode(addr common.Address) []byte {
	if acc := s.getAccount(addr); acc != nil {
		return acc.code
	}
	return nil
}

func (s *MemStateDB) SetCode(addr common.Address, code []byte) {
	acc := s.getOrNewAccount(addr)
	prev := acc.code
	acc.code = common.CopyBytes(code)
	s.journal = append(s.journal, func() {
		acc.code = prev
	})
}

func (s *MemStateDB) GetCodeSize(addr common.Address) int {
	if acc := s.getAccount(addr); acc != nil {
		return len(acc.code)
	}
	return 0
}

// GetCommittedState returns the value the slot held when the current
// transaction began. Slots that have never been written through SetState
// report their live value.
func (s *MemStateDB) GetCommittedState(addr common.Address, key common.Hash) common.Hash {
	if slots := s.committed[addr]; slots != nil {
		if val, ok := slots[key]; ok {
			return common.BytesToHash(val)
		}
	}
	return s.GetState(addr, key)
}

func (s *MemStateDB) GetState(addr common.Address, key common.Hash) common.Hash {
	if acc := s.getAccount(addr); acc != nil {
		return common.BytesToHash(acc.storage[key])
	}
	return common.Hash{}
}

func (s *MemStateDB) SetState(addr common.Address, key, value common.Hash) {
	acc := s.getOrNewAccount(addr)
	prev, existed := acc.storage[key]

	// Capture the pre-transaction value on first touch.
	slots := s.committed[addr]
	if slots == nil {
		slots = make(map[common.Hash][]byte)
		s.committed[addr] = slots
	}
	if _, ok := slots[key]; !ok {
		slots[key] = prev
	}

	trimmed := mc.TrimLeftZeroes(value.Bytes())
	if len(trimmed) == 0 {
		delete(acc.storage, key)
	} else {
		acc.storage[key] = common.CopyBytes(trimmed)
	}
	s.journal = append(s.journal, func() {
		if existed {
			acc.storage[key] = prev
		} else {
			delete(acc.storage, key)
		}
	})
}

// Exist reports whether the given account exists in state.
func (s *MemStateDB) Exist(addr common.Address) bool {
	return s.getAccount(addr) != nil
}

// Empty returns whether the account is considered empty (no balance, no
// nonce and no code).
func (s *MemStateDB) Empty(addr common.Address) bool {
	acc := s.getAccount(addr)
	if acc == nil {
		return true
	}
	return acc.balance.Sign() == 0 && acc.nonce == 0 && len(acc.code) == 0
}

// Finalise marks a transaction boundary. The live state becomes the
// committed baseline for the next transaction and all pending revisions
// are dropped.
func (s *MemStateDB) Finalise() {
	s.committed = make(map[common.Address]map[common.Hash][]byte)
	s.journal = s.journal[:0]
	s.validRevisions = s.validRevisions[:0]
	s.nextRevisionID = 0
}

// Snapshot returns an identifier for the current revision of the state.
func (s *MemStateDB) Snapshot() int {
	id := s.nextRevisionID
	s.nextRevisionID++
	s.validRevisions = append(s.validRevisions, revision{id, len(s.journal)})
	return id
}

// RevertToSnapshot reverts all state changes made since the given revision.
func (s *MemStateDB) RevertToSnapshot(revid int) {
	// Find the snapshot in the stack of valid snapshots.
	idx := -1
	for i, rev := range s.validRevisions {
		if rev.id == revid {
			idx = i
			break
		}
	}
	if idx == -1 {
		panic("revision id cannot be reverted")
	}
	target := s.validRevisions[idx].journalIndex
	for i := len(s.journal) - 1; i >= target; i-- {
		s.journal[i]()
	}
	s.journal = s.journal[:target]
	s.validRevisions = s.validRevisions[:idx]
}
