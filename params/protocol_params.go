package params

const (
	GasLimitBoundDivisor uint64 = 1024 // The bound divisor of the gas limit, used in update calculations.
	MinGasLimit          uint64 = 5000 // Minimum the gas limit may ever be.

	MaximumExtraDataSize uint64 = 32   // Maximum size extra data may be after Genesis.
	CallValueTransferGas uint64 = 9000 // Paid for CALL when the value transfer is non-zero.
	CallNewAccountGas    uint64 = 25000 // Paid for CALL when the destination address didn't exist prior.
	CallStipend          uint64 = 2300 // Free gas given at beginning of call.

	QuadCoeffDiv uint64 = 512 // Divisor for the quadratic particle of the memory cost equation.
	MemoryGas    uint64 = 3   // Times the address of the (highest referenced byte in memory + 1). NOTE: referencing happens on read, write and in instructions such as RETURN and CALL.
	CopyGas      uint64 = 3   // Multiplied by the number of words copied, rounded up.

	LogGas      uint64 = 375 // Per LOG* operation.
	LogTopicGas uint64 = 375 // Multiplied by the * of the LOG*, per LOG transaction. e.g. LOG0 incurs 0 * c_txLogTopicGas, LOG4 incurs 4 * c_txLogTopicGas.
	LogDataGas  uint64 = 8   // Per byte in a LOG* operation's data.

	Keccak256Gas     uint64 = 30 // Once per KECCAK256 operation.
	Keccak256WordGas uint64 = 6  // Once per word of the KECCAK256 operation's data.

	SloadGas       uint64 = 50    // Frontier cost of SLOAD.
	SloadGasEIP150 uint64 = 200   // Cost of SLOAD after EIP 150 (Tangerine).
	SstoreSetGas   uint64 = 20000 // Once per SSTORE operation from zero to non-zero.
	SstoreResetGas uint64 = 5000  // Once per SSTORE operation when the value stays non-zero (or zero to zero).
	SstoreClearGas uint64 = 5000  // Once per SSTORE operation when the value is set to zero.
	SstoreRefundGas uint64 = 15000 // Once per SSTORE operation if the value is set to zero from non-zero.

	NetSstoreNoopGas  uint64 = 200   // Once per SSTORE operation if the value doesn't change.
	NetSstoreInitGas  uint64 = 20000 // Once per SSTORE operation from clean zero.
	NetSstoreCleanGas uint64 = 5000  // Once per SSTORE operation from clean non-zero.
	NetSstoreDirtyGas uint64 = 200   // Once per SSTORE operation from dirty.

	NetSstoreClearRefund      uint64 = 15000 // Once per SSTORE operation for clearing an originally existing storage slot.
	NetSstoreResetRefund      uint64 = 4800  // Once per SSTORE operation for resetting to the original non-zero value.
	NetSstoreResetClearRefund uint64 = 19800 // Once per SSTORE operation for resetting to the original zero value.

	JumpdestGas    uint64 = 1     // Once per JUMPDEST operation.
	CreateDataGas  uint64 = 200   // Per byte of code stored by a successful CREATE.
	CallCreateDepth uint64 = 1024 // Maximum depth of call/create stack.
	ExpGas         uint64 = 10    // Once per EXP instruction.

	StackLimit uint64 = 1024 // Maximum size of VM stack allowed.

	ExpByteFrontier uint64 = 10 // was set to 10 in Frontier.
	ExpByteEIP158   uint64 = 50 // was raised to 50 during EIP-158 (Spurious Dragon).

	CallGasFrontier      uint64 = 40  // Once per CALL operation & message call transaction.
	CallGasEIP150        uint64 = 700 // Static portion of CALL after EIP 150 (Tangerine).
	BalanceGasFrontier   uint64 = 20  // The cost of a BALANCE operation.
	BalanceGasEIP150     uint64 = 400 // The cost of a BALANCE operation after Tangerine.
	ExtcodeSizeGasFrontier uint64 = 20  // Cost of EXTCODESIZE before EIP 150.
	ExtcodeSizeGasEIP150   uint64 = 700 // Cost of EXTCODESIZE after EIP 150.
	ExtcodeCopyBaseFrontier uint64 = 20
	ExtcodeCopyBaseEIP150   uint64 = 700
	ExtcodeHashGasConstantinople uint64 = 400 // Cost of EXTCODEHASH (introduced in Constantinople).

	SelfdestructGasEIP150   uint64 = 5000  // Cost of SELFDESTRUCT post EIP 150 (Tangerine).
	SelfdestructRefundGas   uint64 = 24000 // Refunded following a selfdestruct operation.
	CreateBySelfdestructGas uint64 = 25000 // Surcharge when SELFDESTRUCT sends funds to a fresh account.

	CreateGas uint64 = 32000 // Once per CREATE operation & contract-creation transaction.

	MaxCodeSize = 24576 // Maximum bytecode to permit for a contract.

	TxGas                 uint64 = 21000 // Per transaction not creating a contract.
	TxGasContractCreation uint64 = 53000 // Per transaction that creates a contract.
	TxDataZeroGas         uint64 = 4     // Per byte of data attached to a transaction that equals zero.
	TxDataNonZeroGas      uint64 = 68    // Per byte of data attached to a transaction that is not zero.
)
