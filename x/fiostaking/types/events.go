package types

const (
	EventStake            = "fiostaking.stake"
	EventUnstake          = "fiostaking.unstake"
	EventGlobalRewards    = "fiostaking.global_rewards"
	EventRecordDaily      = "fiostaking.record_daily"
	EventLockCreated      = "fiostaking.lock_created"
	EventLockModified     = "fiostaking.lock_modified"
	EventTpidRewardPaid   = "fiostaking.tpid_reward_paid"
	EventStakeRewardPaid  = "fiostaking.stake_reward_paid"
	EventBundleCreditUsed = "fiostaking.bundle_credit_used"
)

const (
	AttrActor          = "actor"
	AttrFioAddress     = "fio_address"
	AttrTpid           = "tpid"
	AttrAmount         = "amount"
	AttrFeeCollected   = "fee_collected"
	AttrSrps           = "srps"
	AttrRate           = "rate_of_exchange"
	AttrStakingReward  = "staking_reward"
	AttrTpidReward     = "tpid_reward"
	AttrCombinedPool   = "combined_token_pool"
	AttrDailyRewards   = "daily_staking_rewards"
	AttrLockAmount     = "lock_amount"
	AttrPeriods        = "periods"
	AttrInsertDuration = "insert_duration"
)
