package onchain

// Stats is the on-chain signal for one address.
//
// Every quantity that can exceed 53-bit precision (native and token balances)
// is a decimal string by construction, so serialized output never carries an
// unrepresentable numeric type.
type Stats struct {
	Address             string       `json:"address"`
	ChainID             int64        `json:"chainId"`
	Name                string       `json:"name,omitempty"`
	EthBalance          string       `json:"ethBalance"`
	TxCount             uint64       `json:"txCount"`
	IsContractDeployer  bool         `json:"isContractDeployer"`
	ContractDeployments int          `json:"contractDeployments"`
	ERC20               []ERC20Token `json:"erc20"`
	NFTCount            int          `json:"nftCount"`
	HasNFTs             bool         `json:"hasNFTs"`
	DAOVotes            int          `json:"daoVotes"`
}

// ERC20Token is one resolved token position.
type ERC20Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Balance  string `json:"balance"`
}
