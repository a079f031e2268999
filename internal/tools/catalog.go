package tools

// Catalog is the full set of canonical tools, one entry per upstream RPC
// method. Registration order here is the order tools/list reports.
var Catalog = []Spec{
	// eth: chain state and fees
	{
		Name:        "eth_blockNumber",
		Description: "Returns the number of the most recent block.",
		Quantity:    "blockNumber",
	},
	{
		Name:        "eth_chainId",
		Description: "Returns the chain ID of the current network.",
		Quantity:    "chainId",
	},
	{
		Name:        "eth_gasPrice",
		Description: "Returns the current gas price in wei.",
		Quantity:    "gasPrice",
	},
	{
		Name:        "eth_maxPriorityFeePerGas",
		Description: "Returns the suggested max priority fee per gas in wei.",
		Quantity:    "maxPriorityFeePerGas",
	},
	{
		Name:        "eth_blobBaseFee",
		Description: "Returns the expected base fee for blobs in the next block, in wei.",
		Quantity:    "blobBaseFee",
	},
	{
		Name:        "eth_feeHistory",
		Description: "Returns historical gas fee data for a range of blocks.",
		Params: []Param{
			{Name: "blockCount", Type: ParamString, Description: "Number of blocks to cover, as a hex quantity (e.g. 0xa)", Required: true},
			{Name: "newestBlock", Type: ParamString, Description: "Highest block of the range: hex number or a tag (latest, pending, ...)", Default: "latest"},
			{Name: "rewardPercentiles", Type: ParamArray, Description: "Percentile values to sample priority fees at"},
		},
	},
	{
		Name:        "eth_syncing",
		Description: "Returns sync status, or false when the node is fully synced.",
	},
	{
		Name:        "eth_mining",
		Description: "Returns whether the node is actively mining.",
	},
	{
		Name:        "eth_hashrate",
		Description: "Returns the number of hashes per second the node is mining with.",
		Quantity:    "hashrate",
	},
	{
		Name:        "eth_accounts",
		Description: "Returns the list of addresses owned by the node.",
	},
	{
		Name:        "eth_coinbase",
		Description: "Returns the node's coinbase address.",
	},
	{
		Name:        "eth_protocolVersion",
		Description: "Returns the current Ethereum protocol version.",
	},

	// eth: accounts and storage
	{
		Name:        "eth_getBalance",
		Description: "Returns the balance of an address in wei.",
		Params: []Param{
			{Name: "address", Type: ParamString, Description: "Address to query", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
		Quantity: "balance",
	},
	{
		Name:        "eth_getTransactionCount",
		Description: "Returns the number of transactions sent from an address (its nonce).",
		Params: []Param{
			{Name: "address", Type: ParamString, Description: "Address to query", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
		Quantity: "transactionCount",
	},
	{
		Name:        "eth_getCode",
		Description: "Returns the contract code deployed at an address.",
		Params: []Param{
			{Name: "address", Type: ParamString, Description: "Address to query", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "eth_getStorageAt",
		Description: "Returns the value of a storage slot at an address.",
		Params: []Param{
			{Name: "address", Type: ParamString, Description: "Address to query", Required: true},
			{Name: "position", Type: ParamString, Description: "Storage slot position as a hex quantity", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "eth_getProof",
		Description: "Returns a Merkle proof of account and storage values.",
		Params: []Param{
			{Name: "address", Type: ParamString, Description: "Address to prove", Required: true},
			{Name: "storageKeys", Type: ParamArray, Description: "Storage slots to include in the proof", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},

	// eth: blocks
	{
		Name:        "eth_getBlockByNumber",
		Description: "Returns information about a block by number or tag.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
			{Name: "fullTransactions", Type: ParamBoolean, Description: "Return full transaction objects instead of hashes", Default: false},
		},
	},
	{
		Name:        "eth_getBlockByHash",
		Description: "Returns information about a block by hash.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
			{Name: "fullTransactions", Type: ParamBoolean, Description: "Return full transaction objects instead of hashes", Default: false},
		},
	},
	{
		Name:        "eth_getBlockTransactionCountByNumber",
		Description: "Returns the number of transactions in a block, by block number or tag.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
		Quantity: "transactionCount",
	},
	{
		Name:        "eth_getBlockTransactionCountByHash",
		Description: "Returns the number of transactions in a block, by block hash.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
		},
		Quantity: "transactionCount",
	},
	{
		Name:        "eth_getBlockReceipts",
		Description: "Returns all transaction receipts for a block.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "eth_getUncleCountByBlockNumber",
		Description: "Returns the number of uncles in a block, by block number or tag.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
		Quantity: "uncleCount",
	},
	{
		Name:        "eth_getUncleCountByBlockHash",
		Description: "Returns the number of uncles in a block, by block hash.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
		},
		Quantity: "uncleCount",
	},
	{
		Name:        "eth_getUncleByBlockNumberAndIndex",
		Description: "Returns an uncle block by block number and uncle index.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
			{Name: "index", Type: ParamString, Description: "Uncle index as a hex quantity", Required: true},
		},
	},
	{
		Name:        "eth_getUncleByBlockHashAndIndex",
		Description: "Returns an uncle block by block hash and uncle index.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
			{Name: "index", Type: ParamString, Description: "Uncle index as a hex quantity", Required: true},
		},
	},

	// eth: transactions
	{
		Name:        "eth_getTransactionByHash",
		Description: "Returns a transaction by its hash.",
		Params: []Param{
			{Name: "txHash", Type: ParamString, Description: "Hash of the transaction", Required: true},
		},
	},
	{
		Name:        "eth_getTransactionByBlockNumberAndIndex",
		Description: "Returns a transaction by block number and transaction index.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
			{Name: "index", Type: ParamString, Description: "Transaction index as a hex quantity", Required: true},
		},
	},
	{
		Name:        "eth_getTransactionByBlockHashAndIndex",
		Description: "Returns a transaction by block hash and transaction index.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
			{Name: "index", Type: ParamString, Description: "Transaction index as a hex quantity", Required: true},
		},
	},
	{
		Name:        "eth_getTransactionReceipt",
		Description: "Returns the receipt of a transaction by its hash.",
		Params: []Param{
			{Name: "txHash", Type: ParamString, Description: "Hash of the transaction", Required: true},
		},
	},
	{
		Name:        "eth_sendRawTransaction",
		Description: "Broadcasts a signed, RLP-encoded transaction.",
		Params: []Param{
			{Name: "rawTx", Type: ParamString, Description: "Signed transaction data as a hex string", Required: true},
		},
		Gated: true,
	},

	// eth: execution and logs
	{
		Name:        "eth_call",
		Description: "Executes a message call without creating a transaction.",
		Params: []Param{
			{Name: "transaction", Type: ParamObject, Description: "Call object (to, from, data, value, gas, ...)", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "eth_estimateGas",
		Description: "Estimates the gas needed to execute a transaction.",
		Params: []Param{
			{Name: "transaction", Type: ParamObject, Description: "Call object (to, from, data, value, gas, ...)", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag"},
		},
		Quantity: "gasEstimate",
	},
	{
		Name:        "eth_createAccessList",
		Description: "Creates an EIP-2930 access list for a transaction.",
		Params: []Param{
			{Name: "transaction", Type: ParamObject, Description: "Call object (to, from, data, value, gas, ...)", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "eth_getLogs",
		Description: "Returns logs matching a filter object.",
		Params: []Param{
			{Name: "filter", Type: ParamObject, Description: "Filter object (fromBlock, toBlock, address, topics, ...)", Required: true},
		},
	},

	// admin
	{
		Name:        "admin_nodeInfo",
		Description: "Returns information about the running node.",
	},
	{
		Name:        "admin_peers",
		Description: "Returns information about connected peers.",
	},
	{
		Name:        "admin_datadir",
		Description: "Returns the absolute path of the node's data directory.",
	},
	{
		Name:        "admin_addPeer",
		Description: "Adds a static peer by enode URL.",
		Params: []Param{
			{Name: "enode", Type: ParamString, Description: "enode URL of the peer", Required: true},
		},
	},
	{
		Name:        "admin_removePeer",
		Description: "Removes a static peer by enode URL.",
		Params: []Param{
			{Name: "enode", Type: ParamString, Description: "enode URL of the peer", Required: true},
		},
	},
	{
		Name:        "admin_addTrustedPeer",
		Description: "Marks a peer as trusted by enode URL.",
		Params: []Param{
			{Name: "enode", Type: ParamString, Description: "enode URL of the peer", Required: true},
		},
	},
	{
		Name:        "admin_removeTrustedPeer",
		Description: "Removes a peer from the trusted set by enode URL.",
		Params: []Param{
			{Name: "enode", Type: ParamString, Description: "enode URL of the peer", Required: true},
		},
	},

	// debug
	{
		Name:        "debug_traceTransaction",
		Description: "Replays a transaction and returns its execution trace.",
		Params: []Param{
			{Name: "txHash", Type: ParamString, Description: "Hash of the transaction", Required: true},
			{Name: "traceConfig", Type: ParamAny, Description: "Tracer configuration, forwarded verbatim"},
		},
	},
	{
		Name:        "debug_traceCall",
		Description: "Executes a call and returns its execution trace.",
		Params: []Param{
			{Name: "transaction", Type: ParamObject, Description: "Call object (to, from, data, value, gas, ...)", Required: true},
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
			{Name: "traceConfig", Type: ParamAny, Description: "Tracer configuration, forwarded verbatim"},
		},
	},
	{
		Name:        "debug_traceBlockByNumber",
		Description: "Traces all transactions in a block, by block number or tag.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
			{Name: "traceConfig", Type: ParamAny, Description: "Tracer configuration, forwarded verbatim"},
		},
	},
	{
		Name:        "debug_traceBlockByHash",
		Description: "Traces all transactions in a block, by block hash.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
			{Name: "traceConfig", Type: ParamAny, Description: "Tracer configuration, forwarded verbatim"},
		},
	},
	{
		Name:        "debug_getRawBlock",
		Description: "Returns the RLP-encoded block.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "debug_getRawHeader",
		Description: "Returns the RLP-encoded block header.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "debug_getRawReceipts",
		Description: "Returns the binary-encoded receipts of a block.",
		Params: []Param{
			{Name: "block", Type: ParamString, Description: "Block number (hex) or tag", Default: "latest"},
		},
	},
	{
		Name:        "debug_getRawTransaction",
		Description: "Returns the RLP-encoded transaction.",
		Params: []Param{
			{Name: "txHash", Type: ParamString, Description: "Hash of the transaction", Required: true},
		},
	},
	{
		Name:        "debug_getBadBlocks",
		Description: "Returns recent blocks the node considered invalid.",
	},
	{
		Name:        "debug_storageRangeAt",
		Description: "Returns a range of storage entries for an address at a block.",
		Params: []Param{
			{Name: "blockHash", Type: ParamString, Description: "Hash of the block", Required: true},
			{Name: "txIndex", Type: ParamInteger, Description: "Transaction index within the block", Required: true},
			{Name: "address", Type: ParamString, Description: "Contract address", Required: true},
			{Name: "startKey", Type: ParamString, Description: "Storage key to start at, as a hex string", Required: true},
			{Name: "limit", Type: ParamInteger, Description: "Maximum number of entries to return", Required: true},
		},
	},
	{
		Name:        "debug_gcStats",
		Description: "Returns garbage collection statistics of the node process.",
	},
	{
		Name:        "debug_memStats",
		Description: "Returns memory statistics of the node process.",
	},

	// txpool
	{
		Name:        "txpool_status",
		Description: "Returns the number of pending and queued transactions in the pool.",
	},
	{
		Name:        "txpool_content",
		Description: "Returns the full content of the transaction pool.",
	},
	{
		Name:        "txpool_contentFrom",
		Description: "Returns the pool transactions sent from one address.",
		Params: []Param{
			{Name: "address", Type: ParamString, Description: "Sender address", Required: true},
		},
	},
	{
		Name:        "txpool_inspect",
		Description: "Returns a textual summary of the transaction pool.",
	},
}

// Aliases maps friendly camelCase names onto catalog entries. Targets must
// exist in Catalog; a dangling entry fails startup.
var Aliases = []Alias{
	{Name: "getBlockNumber", Target: "eth_blockNumber"},
	{Name: "getChainId", Target: "eth_chainId"},
	{Name: "getGasPrice", Target: "eth_gasPrice"},
	{Name: "getMaxPriorityFeePerGas", Target: "eth_maxPriorityFeePerGas"},
	{Name: "getFeeHistory", Target: "eth_feeHistory"},
	{Name: "getSyncing", Target: "eth_syncing"},
	{Name: "getBalance", Target: "eth_getBalance"},
	{Name: "getTransactionCount", Target: "eth_getTransactionCount"},
	{Name: "getCode", Target: "eth_getCode"},
	{Name: "getStorageAt", Target: "eth_getStorageAt"},
	{Name: "getProof", Target: "eth_getProof"},
	{Name: "getBlockByNumber", Target: "eth_getBlockByNumber"},
	{Name: "getBlockByHash", Target: "eth_getBlockByHash"},
	{Name: "getBlockReceipts", Target: "eth_getBlockReceipts"},
	{Name: "getTransaction", Target: "eth_getTransactionByHash", Description: "Returns a transaction by its hash (alias of eth_getTransactionByHash)."},
	{Name: "getTransactionReceipt", Target: "eth_getTransactionReceipt"},
	{Name: "sendRawTransaction", Target: "eth_sendRawTransaction"},
	{Name: "call", Target: "eth_call"},
	{Name: "estimateGas", Target: "eth_estimateGas"},
	{Name: "getLogs", Target: "eth_getLogs"},
	{Name: "getNodeInfo", Target: "admin_nodeInfo"},
	{Name: "getPeers", Target: "admin_peers"},
	{Name: "traceTransaction", Target: "debug_traceTransaction"},
	{Name: "traceCall", Target: "debug_traceCall"},
	{Name: "txpoolStatus", Target: "txpool_status"},
	{Name: "txpoolContent", Target: "txpool_content"},
}
